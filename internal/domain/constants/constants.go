// Package constants holds string identifiers shared between layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// LLM providers
const (
	LLMProviderOpenAI = "openai"
	LLMProviderVertex = "vertex"
)

// Event names carried on the queue
const (
	EventUserCreated          = "user.created"
	EventFitnessPlanGenerate  = "fitness-plan.generate"
	EventMealPlanRegenerate   = "meal-plan.regenerate"
	EventShoppingListGenerate = "shopping-list.generate"
)

// Workflow names, used with the run key to identify a workflow run
const (
	WorkflowIdentity       = "identity"
	WorkflowPlanGeneration = "plan-generation"
	WorkflowMealPlan       = "meal-plan-regeneration"
	WorkflowShoppingList   = "shopping-list"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID = "userID"
)
