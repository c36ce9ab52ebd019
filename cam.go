package camdash

// CAM is a Collections Account Manager identity. Accounts reference a CAM by
// name only; no referential integrity is enforced.
type CAM struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
