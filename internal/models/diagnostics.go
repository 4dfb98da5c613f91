package models

// SupabaseStatus is the passthrough body of the BaaS diagnostic endpoint.
// It is not wrapped in APIResponse.
// swagger:model SupabaseStatus
type SupabaseStatus struct {
	// example: success
	Status string `json:"status"`
	// example: 200
	SupabaseStatus int `json:"supabase_status"`
	// example: []
	Body string `json:"body"`
}
