// Package tree turns flat create/update/delete requests against a stream's message tree
// into nested write operations plus a summary of every resulting parent assignment.
//
// Everything here is pure: no I/O, no clock, no randomness. Identical input always
// produces identical output.
package tree

import (
	"cmp"
	"slices"

	"github.com/s21platform/chat-tree-service/internal/model"
)

const (
	listCreate = "create"
	listUpdate = "update"
	listDelete = "delete"
)

type options struct {
	strictParents bool
}

type Option func(*options)

// WithStrictParents rejects creates whose declared parent is not created in the same batch.
func WithStrictParents() Option {
	return func(o *options) {
		o.strictParents = true
	}
}

func BuildOperations(in model.TreeOpsInput, opts ...Option) (model.TreeOpsOutput, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	deleted, err := validate(in, o)
	if err != nil {
		return model.TreeOpsOutput{}, err
	}

	order, err := sortCreates(in.Create)
	if err != nil {
		return model.TreeOpsOutput{}, err
	}

	creates, createSummary := nestCreates(in, order, deleted)
	updates, updateSummary := healDeletes(in, deleted)

	out := model.TreeOpsOutput{
		Summary: model.Summary{
			Create: createSummary,
			Update: updateSummary,
		},
	}

	if len(creates) == 0 && len(updates) == 0 && len(in.Delete) == 0 {
		return out, nil
	}

	ops := &model.TreeOps{
		Create: creates,
		Update: updates,
	}
	if len(in.Delete) > 0 {
		ops.Delete = slices.Clone(in.Delete)
	}
	out.Ops = ops

	return out, nil
}

func validate(in model.TreeOpsInput, o options) (map[string]struct{}, error) {
	seen := make(map[string]string, len(in.Create)+len(in.Update)+len(in.Delete))
	mark := func(id, list string) error {
		if prev, ok := seen[id]; ok {
			return &DuplicateIDError{ID: id, First: prev, Again: list}
		}
		seen[id] = list
		return nil
	}

	for _, c := range in.Create {
		if err := mark(c.ID, listCreate); err != nil {
			return nil, err
		}
	}
	for _, u := range in.Update {
		if err := mark(u.ID, listUpdate); err != nil {
			return nil, err
		}
	}
	deleted := make(map[string]struct{}, len(in.Delete))
	for _, id := range in.Delete {
		if err := mark(id, listDelete); err != nil {
			return nil, err
		}
		deleted[id] = struct{}{}
	}

	for _, c := range in.Create {
		if c.ParentID == nil {
			continue
		}
		parentID := *c.ParentID
		if _, gone := deleted[parentID]; gone {
			return nil, &UnknownParentError{ID: c.ID, ParentID: parentID, Reason: "is deleted in the same batch"}
		}
		if o.strictParents && seen[parentID] != listCreate {
			return nil, &UnknownParentError{ID: c.ID, ParentID: parentID, Reason: "is not created in the same batch"}
		}
	}

	return deleted, nil
}

const (
	unvisited = iota
	visiting
	visited
)

// sortCreates returns indexes into creates with every in-batch parent ahead of its children.
func sortCreates(creates []model.CreateMessage) ([]int, error) {
	index := make(map[string]int, len(creates))
	for i, c := range creates {
		index[c.ID] = i
	}

	state := make([]int, len(creates))
	order := make([]int, 0, len(creates))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return &CycleError{ID: creates[i].ID}
		case visited:
			return nil
		}

		state[i] = visiting
		if p := creates[i].ParentID; p != nil {
			if j, ok := index[*p]; ok {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		state[i] = visited
		order = append(order, i)

		return nil
	}

	for i := range creates {
		if err := visit(i); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// nestCreates folds the sorted creates into chains, leaf outermost, so each chain is a
// single cascading insert. Chains come out ordered by the topological rank of their
// innermost node: a chain connecting to an in-batch row always follows the chain creating it.
func nestCreates(in model.TreeOpsInput, order []int, deleted map[string]struct{}) ([]*model.CreateNode, []model.ParentChange) {
	summary := make([]model.ParentChange, len(order))
	if len(order) == 0 {
		return nil, summary
	}

	nodes := make(map[string]*model.CreateNode, len(order))
	rank := make(map[string]int, len(order))
	pending := make(map[string]struct{}, len(order))
	for pos, i := range order {
		msg := in.Create[i]
		msg.ParentID = nil
		nodes[msg.ID] = &model.CreateNode{Message: msg}
		rank[msg.ID] = pos
		pending[msg.ID] = struct{}{}
	}

	defaultParent := healWalk(in.BranchInfo.LastMessageID, in.BranchInfo.TreePatchInfo, deleted)

	var chains []*model.CreateNode
	for pos := len(order) - 1; pos >= 0; pos-- {
		c := in.Create[order[pos]]
		node := nodes[c.ID]

		parentID := defaultParent
		if c.ParentID != nil {
			parentID = c.ParentID
		}
		summary[pos] = model.ParentChange{ID: c.ID, ParentID: clonePtr(parentID)}

		if _, top := pending[c.ID]; top {
			chains = append(chains, node)
		}

		if parentID == nil {
			continue
		}
		if parent, ok := nodes[*parentID]; ok {
			if _, free := pending[*parentID]; free {
				node.Parent = model.CreateInline(parent)
				delete(pending, *parentID)
				continue
			}
		}
		node.Parent = model.ConnectTo(*parentID)
	}

	slices.SortFunc(chains, func(a, b *model.CreateNode) int {
		return cmp.Compare(rank[innermost(a).Message.ID], rank[innermost(b).Message.ID])
	})

	return chains, summary
}

func innermost(node *model.CreateNode) *model.CreateNode {
	for node.Parent.Kind == model.ParentCreate {
		node = node.Parent.Node
	}
	return node
}

// healDeletes re-points every surviving child of a deleted message at its nearest surviving
// ancestor, or makes it a root. Healed parents merge into client updates for the same id.
func healDeletes(in model.TreeOpsInput, deleted map[string]struct{}) ([]*model.UpdateOp, []model.ParentChange) {
	var updates []*model.UpdateOp
	byID := make(map[string]*model.UpdateOp, len(in.Update))
	for _, u := range in.Update {
		op := &model.UpdateOp{ID: u.ID, Content: clonePtr(u.Content)}
		updates = append(updates, op)
		byID[u.ID] = op
	}

	summary := make([]model.ParentChange, 0)
	healed := make(map[string]struct{})
	for _, id := range in.Delete {
		patch, ok := in.BranchInfo.TreePatchInfo[id]
		if !ok {
			continue
		}

		for _, childID := range patch.ChildIDs {
			if _, gone := deleted[childID]; gone {
				continue
			}
			if _, done := healed[childID]; done {
				continue
			}
			healed[childID] = struct{}{}

			newParent := healWalk(patch.ParentID, in.BranchInfo.TreePatchInfo, deleted)
			ref := model.Disconnect()
			if newParent != nil {
				ref = model.ConnectTo(*newParent)
			}

			if op, ok := byID[childID]; ok {
				op.Parent = &ref
			} else {
				op = &model.UpdateOp{ID: childID, Parent: &ref}
				updates = append(updates, op)
				byID[childID] = op
			}

			summary = append(summary, model.ParentChange{ID: childID, ParentID: newParent})
		}
	}

	return updates, summary
}

// healWalk returns the first id on the ancestor chain starting at start that is not being
// deleted. A walk that runs off the top or cannot continue ends at the root.
func healWalk(start *string, patches map[string]model.TreePatch, deleted map[string]struct{}) *string {
	seen := make(map[string]struct{})
	for cur := start; cur != nil; {
		if _, gone := deleted[*cur]; !gone {
			return clonePtr(cur)
		}
		if _, loop := seen[*cur]; loop {
			return nil
		}
		seen[*cur] = struct{}{}

		patch, ok := patches[*cur]
		if !ok {
			return nil
		}
		cur = patch.ParentID
	}

	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
