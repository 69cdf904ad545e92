// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SiteConfig holds site-wide presentation settings kept by the blog store.
// Language is either "zh" or "en" and is also persisted locally so it
// survives restarts.
type SiteConfig struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	Theme           string `json:"theme"`
	Language        string `json:"language"`
}
