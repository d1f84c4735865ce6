package rbac

// Permission represents an atomic capability that can be assigned to
// roles: a named action on a resource. Nothing in this module enforces
// it; enforcement belongs to the embedding system.
type Permission struct {
	Name        string
	Description string
	Resource    string
	Action      string
}
