package constants

// Billing plans. Quota numbers live in internal/limits; the schema only
// needs the closed set of names.
const (
	PlanFree    = "free"
	PlanStarter = "starter"
	PlanPro     = "pro"
)

var Plans = []string{PlanFree, PlanStarter, PlanPro}
