package workspaces

// Workspace represents an organizational scope a principal may belong to.
// A workspace can be deactivated independently of its members; the
// authentication guard refuses logins for members of an inactive workspace.
type Workspace struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
