package sync

// Mutation identifies one write operation against the backend.
type Mutation string

const (
	MutationCheckIn          Mutation = "checkin"
	MutationWeight           Mutation = "weight"
	MutationWaist            Mutation = "waist"
	MutationPhoto            Mutation = "photo"
	MutationPrincipalPayment Mutation = "principal_payment"
	MutationBalanceCheck     Mutation = "balance_check"
	MutationTrip             Mutation = "trip"
	MutationGift             Mutation = "gift"
	MutationSettings         Mutation = "settings"
	MutationReset            Mutation = "reset"
)

// refetchPlan maps each mutation to exactly the read resources whose data it
// can affect. The synchronizer executes this table instead of hand-coded
// per-handler lists, so adding a mutation means adding a row, not auditing
// every handler. A trip save never refetches mortgage data and vice versa.
var refetchPlan = map[Mutation][]Resource{
	MutationCheckIn:          {ResourceCheckIns, ResourceSummary, ResourceReview},
	MutationWeight:           {ResourceFitness, ResourceSummary},
	MutationWaist:            {ResourceFitness, ResourceSummary},
	MutationPhoto:            {ResourceFitness, ResourceSummary},
	MutationPrincipalPayment: {ResourceMortgageSummary, ResourceMortgageEvents, ResourceSummary, ResourceReview},
	MutationBalanceCheck:     {ResourceMortgageSummary, ResourceMortgageEvents, ResourceSummary, ResourceReview},
	MutationTrip:             {ResourceTrip, ResourceTripHistory, ResourceSummary},
	MutationGift:             {ResourceGifts, ResourceSummary, ResourceReview},
	MutationSettings:         {ResourceSettings},
	MutationReset:            nil, // nil means everything
}

// fallbackMessages are the fixed default phrases used when a mutation fails
// without a server-provided detail message.
var fallbackMessages = map[Mutation]string{
	MutationCheckIn:          "Failed to save check-in",
	MutationWeight:           "Failed to add weight",
	MutationWaist:            "Failed to add waist measurement",
	MutationPhoto:            "Failed to upload photo",
	MutationPrincipalPayment: "Failed to add payment",
	MutationBalanceCheck:     "Failed to add balance check",
	MutationTrip:             "Failed to save trip plan",
	MutationGift:             "Failed to add gift",
	MutationSettings:         "Failed to save settings",
	MutationReset:            "Failed to reset data",
}

// Fallback returns the fixed default error phrase for a mutation.
func Fallback(m Mutation) string {
	if msg, ok := fallbackMessages[m]; ok {
		return msg
	}
	return "Request failed"
}

// Plan returns the refetch set for a mutation. Unknown mutations refetch
// everything rather than risk stale state.
func Plan(m Mutation) []Resource {
	resources, ok := refetchPlan[m]
	if !ok || resources == nil {
		all := AllResources()
		return append(all, ResourceCheckIns)
	}
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}
