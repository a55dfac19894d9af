package workspacerepofakes

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/playercore/go-auth-guard/workspaces"
)

var _ workspaces.Repo = (*FakeWorkspaceRepo)(nil)

type FakeWorkspaceRepo struct {
	workspaces map[string]*workspaces.Workspace
	lock       sync.RWMutex
}

func NewFakeWorkspaceRepo() workspaces.Repo {
	return &FakeWorkspaceRepo{
		workspaces: make(map[string]*workspaces.Workspace),
	}
}

func (wr *FakeWorkspaceRepo) Upsert(workspace *workspaces.Workspace) error {
	wr.lock.Lock()
	defer wr.lock.Unlock()
	if workspace.ID == "" {
		workspace.ID = uuid.New().String()
	}
	wr.workspaces[workspace.ID] = workspace
	return nil
}

func (wr *FakeWorkspaceRepo) Delete(workspaceID string) error {
	wr.lock.Lock()
	defer wr.lock.Unlock()
	delete(wr.workspaces, workspaceID)
	return nil
}

func (wr *FakeWorkspaceRepo) Get(workspaceID string) (*workspaces.Workspace, error) {
	wr.lock.RLock()
	defer wr.lock.RUnlock()
	workspace, ok := wr.workspaces[workspaceID]
	if !ok {
		return nil, errors.New("not found")
	}
	return workspace, nil
}

func (wr *FakeWorkspaceRepo) List(offset, limit int) ([]*workspaces.Workspace, error) {
	wr.lock.RLock()
	defer wr.lock.RUnlock()

	list := make([]*workspaces.Workspace, 0, len(wr.workspaces))
	for _, w := range wr.workspaces {
		list = append(list, w)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	if offset > len(list)-1 {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}

	return list[offset:end], nil
}
