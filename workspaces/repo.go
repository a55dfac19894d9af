package workspaces

type Repo interface {
	Upsert(workspace *Workspace) error
	Delete(workspaceID string) error
	Get(workspaceID string) (*Workspace, error)
	List(offset, limit int) ([]*Workspace, error)
}
