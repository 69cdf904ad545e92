// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fallback

import (
	"time"

	"inkwell/internal/models"
)

func stamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var seedCategories = []models.Category{
	{ID: "1", Name: "Frontend", Description: "Modern frontend frameworks and tooling", Color: "#3b82f6", ArticleCount: 15},
	{ID: "2", Name: "Backend", Description: "Node.js, Python, Java and other server-side stacks", Color: "#10b981", ArticleCount: 12},
	{ID: "3", Name: "Algorithms", Description: "Algorithmic thinking and data structures", Color: "#f59e0b", ArticleCount: 8},
	{ID: "4", Name: "AI", Description: "Machine learning and deep learning", Color: "#8b5cf6", ArticleCount: 6},
	{ID: "5", Name: "Architecture", Description: "Microservices and distributed system design", Color: "#ef4444", ArticleCount: 10},
	{ID: "6", Name: "Databases", Description: "SQL and NoSQL database technology", Color: "#06b6d4", ArticleCount: 7},
	{ID: "7", Name: "DevOps", Description: "CI/CD, containers and cloud native", Color: "#84cc16", ArticleCount: 9},
}

var seedTags = []models.Tag{
	{ID: "1", Name: "Vue.js", Color: "#4fc08d", ArticleCount: 8},
	{ID: "2", Name: "React", Color: "#61dafb", ArticleCount: 7},
	{ID: "3", Name: "TypeScript", Color: "#3178c6", ArticleCount: 12},
	{ID: "4", Name: "JavaScript", Color: "#f7df1e", ArticleCount: 15},
	{ID: "5", Name: "CSS", Color: "#1572b6", ArticleCount: 6},
	{ID: "6", Name: "Tailwind CSS", Color: "#06b6d4", ArticleCount: 5},
	{ID: "7", Name: "Vite", Color: "#646cff", ArticleCount: 4},
	{ID: "8", Name: "Webpack", Color: "#8dd6f9", ArticleCount: 3},
	{ID: "9", Name: "Node.js", Color: "#339933", ArticleCount: 9},
	{ID: "10", Name: "Express", Color: "#000000", ArticleCount: 6},
	{ID: "11", Name: "Python", Color: "#3776ab", ArticleCount: 8},
	{ID: "12", Name: "Django", Color: "#092e20", ArticleCount: 4},
	{ID: "13", Name: "FastAPI", Color: "#009688", ArticleCount: 3},
	{ID: "14", Name: "Java", Color: "#ed8b00", ArticleCount: 7},
	{ID: "15", Name: "Spring Boot", Color: "#6db33f", ArticleCount: 5},
	{ID: "16", Name: "MySQL", Color: "#4479a1", ArticleCount: 6},
	{ID: "17", Name: "PostgreSQL", Color: "#336791", ArticleCount: 4},
	{ID: "18", Name: "MongoDB", Color: "#47a248", ArticleCount: 5},
	{ID: "19", Name: "Redis", Color: "#dc382d", ArticleCount: 4},
	{ID: "20", Name: "Supabase", Color: "#3ecf8e", ArticleCount: 3},
	{ID: "21", Name: "Algorithms", Color: "#ff6b6b", ArticleCount: 8},
	{ID: "22", Name: "Data Structures", Color: "#4ecdc4", ArticleCount: 6},
	{ID: "23", Name: "Machine Learning", Color: "#45b7d1", ArticleCount: 5},
	{ID: "24", Name: "TensorFlow", Color: "#ff6f00", ArticleCount: 3},
	{ID: "25", Name: "PyTorch", Color: "#ee4c2c", ArticleCount: 3},
	{ID: "26", Name: "OpenAI", Color: "#412991", ArticleCount: 4},
	{ID: "27", Name: "Docker", Color: "#2496ed", ArticleCount: 7},
	{ID: "28", Name: "Kubernetes", Color: "#326ce5", ArticleCount: 5},
	{ID: "29", Name: "AWS", Color: "#ff9900", ArticleCount: 6},
	{ID: "30", Name: "Git", Color: "#f05032", ArticleCount: 8},
	{ID: "31", Name: "GitHub Actions", Color: "#2088ff", ArticleCount: 4},
	{ID: "32", Name: "Nginx", Color: "#009639", ArticleCount: 3},
	{ID: "33", Name: "Microservices", Color: "#ff7675", ArticleCount: 6},
	{ID: "34", Name: "Distributed Systems", Color: "#74b9ff", ArticleCount: 5},
	{ID: "35", Name: "Design Patterns", Color: "#a29bfe", ArticleCount: 4},
	{ID: "36", Name: "System Design", Color: "#fd79a8", ArticleCount: 7},
	{ID: "37", Name: "API Design", Color: "#fdcb6e", ArticleCount: 5},
	{ID: "38", Name: "Performance", Color: "#00b894", ArticleCount: 6},
	{ID: "39", Name: "Caching", Color: "#e17055", ArticleCount: 4},
	{ID: "40", Name: "Monitoring", Color: "#6c5ce7", ArticleCount: 3},
}

var seedArticles = []models.Article{
	{
		ID:      "1",
		Title:   "Vue 3 Composition API in Practice",
		Excerpt: "What a year of refactoring a production frontend onto the Composition API taught us about organizing component logic, building composables and avoiding the classic reactivity traps.",
		Content: `# Vue 3 Composition API in Practice

We spent most of last quarter moving a large Vue 2 codebase onto the
Composition API. Here is what actually mattered.

## Why bother

The Options API scatters one feature across data, methods and computed
blocks. Mixins make reuse possible but introduce naming collisions and
invisible coupling. The Composition API fixes both: a feature lives in
one function, and reuse is a plain import.

## The entry point

` + "```javascript" + `
import { ref, reactive, computed, onMounted } from 'vue'

export default {
  setup() {
    const count = ref(0)
    const user = reactive({ name: 'Alex Chen', email: 'alex@example.com' })

    const doubleCount = computed(() => count.value * 2)
    const increment = () => { count.value++ }

    onMounted(() => console.log('mounted'))

    return { count, user, doubleCount, increment }
  }
}
` + "```" + `

## Composables

The real payoff is extracting logic into reusable functions:

` + "```javascript" + `
export function useUserApi() {
  const users = ref([])
  const loading = ref(false)
  const error = ref(null)

  const fetchUsers = async () => {
    loading.value = true
    try {
      const response = await axios.get('/api/users')
      users.value = response.data
    } catch (err) {
      error.value = err.message
    } finally {
      loading.value = false
    }
  }

  return { users, loading, error, fetchUsers }
}
` + "```" + `

## Traps

Destructuring a reactive object silently drops reactivity; go through
toRefs. And remember that a ref is a box: .value in script, bare in
templates.

The Composition API is not syntax sugar. It is a different way of
organizing component logic, and for codebases past a certain size it is
the better one.`,
		CoverImage:  "https://images.unsplash.com/photo-1593720213428-28a5b9e94613?w=1280",
		Category:    seedCategories[0],
		Tags:        []models.Tag{seedTags[0], seedTags[2], seedTags[3]},
		Author:      "Alex Chen",
		PublishDate: stamp("2024-01-15T10:00:00Z"),
		UpdateDate:  stamp("2024-01-16T14:30:00Z"),
		ReadCount:   2847,
		LikeCount:   156,
		Status:      models.StatusPublished,
	},
	{
		ID:      "2",
		Title:   "Advanced TypeScript for Enterprise Applications",
		Excerpt: "Generic constraints, conditional types and mapped types applied to a real design system: how a strict type layer cut our runtime errors and onboarding time.",
		Content: `# Advanced TypeScript for Enterprise Applications

Our design system has over two hundred components. The thing holding it
together is not discipline, it is the type system.

## Unions and intersections

` + "```typescript" + `
type UserRole = 'admin' | 'editor' | 'viewer'
type Permission = 'read' | 'write' | 'delete'

interface BaseUser {
  id: string
  name: string
  email: string
}

interface UserPermissions {
  role: UserRole
  permissions: Permission[]
}

type AuthenticatedUser = BaseUser & UserPermissions
` + "```" + `

## Generic constraints

A constrained generic turns a stringly-typed API client into a typed
one:

` + "```typescript" + `
interface HasId {
  id: string | number
}

class ApiService<T extends HasId> {
  constructor(private endpoint: string) {}

  async getById(id: T['id']): Promise<T> {
    const response = await fetch(this.endpoint + '/' + id)
    return response.json()
  }

  async update(id: T['id'], data: Partial<Omit<T, 'id'>>): Promise<T> {
    const response = await fetch(this.endpoint + '/' + id, {
      method: 'PUT',
      body: JSON.stringify(data),
    })
    return response.json()
  }
}
` + "```" + `

## Conditional and mapped types

Conditional types let validation rules follow the field type; mapped
types generate loading and error flags for a whole state interface in
two lines. Both are easy to overuse. Keep the clever types at the
library boundary and the application code boring.

## What it bought us

Compile-time checks removed the majority of our runtime type errors,
and new hires navigate the codebase by following types instead of
reading wikis. The types are the documentation.`,
		CoverImage:  "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=1280",
		Category:    seedCategories[0],
		Tags:        []models.Tag{seedTags[2], seedTags[3]},
		Author:      "Sarah Wang",
		PublishDate: stamp("2024-01-12T14:30:00Z"),
		UpdateDate:  stamp("2024-01-13T09:15:00Z"),
		ReadCount:   1876,
		LikeCount:   134,
		Status:      models.StatusPublished,
	},
	{
		ID:      "3",
		Title:   "From Monolith to Microservices with Node.js",
		Excerpt: "An eight month migration of a high-traffic commerce platform: how we split services along domain boundaries, handled distributed transactions with sagas, and kept the lights on throughout.",
		Content: `# From Monolith to Microservices with Node.js

Last year we split a three year old commerce monolith into services.
The migration took eight months. This is the short version.

## Why we did it

Every release meant downtime for everything. Twenty developers in one
repository meant constant merge conflicts. And we could not scale the
checkout path without scaling the whole application.

## Splitting along domains

We cut along business domains, not technical layers: a user service, a
product service, an order service, a payment service and a notification
service. Each owns its database. Foreign keys across services exist
only as plain columns, never as constraints.

## Distributed transactions

Cross-service writes use the saga pattern: each step registers a
compensation, and a failure unwinds them in reverse order.

` + "```javascript" + `
class OrderSaga {
  constructor() {
    this.compensations = []
  }

  async createOrder(orderData) {
    try {
      const order = await this.orderService.createOrder(orderData)
      this.compensations.push(() => this.orderService.cancelOrder(order.id))

      await this.productService.decreaseStock(orderData.items)
      this.compensations.push(() => this.productService.increaseStock(orderData.items))

      const payment = await this.paymentService.processPayment(order)
      this.compensations.push(() => this.paymentService.refund(payment.id))

      return { order, payment }
    } catch (error) {
      await this.compensate()
      throw error
    }
  }

  async compensate() {
    for (const undo of this.compensations.reverse()) {
      await undo()
    }
  }
}
` + "```" + `

## Results

Deploys went from thirty minutes with downtime to five minutes without.
Availability went from 99.5% to 99.9%. The checkout path now scales on
its own.

Microservices are not free: you trade code complexity for operational
complexity. Make sure the monolith's problems are the ones this trade
solves before you make it.`,
		CoverImage:  "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?w=1280",
		Category:    seedCategories[1],
		Tags:        []models.Tag{seedTags[8], seedTags[26], seedTags[32]},
		Author:      "Michael Zhang",
		PublishDate: stamp("2024-01-10T09:15:00Z"),
		UpdateDate:  stamp("2024-01-11T16:45:00Z"),
		ReadCount:   3245,
		LikeCount:   198,
		Status:      models.StatusPublished,
	},
}
