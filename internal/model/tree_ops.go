package model

import (
	"encoding/json"
	"fmt"
)

type TreeOpsInput struct {
	BranchInfo PreBranchInfo
	Create     []CreateMessage
	Update     []UpdateMessage
	Delete     []string
}

type TreeOpsOutput struct {
	// Ops is nil when the batch resolves to no writes.
	Ops     *TreeOps `json:"ops,omitempty"`
	Summary Summary  `json:"summary"`
}

type TreeOps struct {
	Create []*CreateNode `json:"create,omitempty"`
	Update []*UpdateOp   `json:"update,omitempty"`
	Delete []string      `json:"delete,omitempty"`
}

type CreateNode struct {
	Message CreateMessage `json:"message"`
	Parent  ParentRef     `json:"parent"`
}

type UpdateOp struct {
	ID      string     `json:"id"`
	Content *string    `json:"content,omitempty"`
	Parent  *ParentRef `json:"parent,omitempty"`
}

type ParentRefKind int

const (
	ParentNone ParentRefKind = iota
	ParentConnect
	ParentCreate
	ParentDisconnect
)

// ParentRef describes how a written row reaches its parent.
type ParentRef struct {
	Kind ParentRefKind
	ID   string
	Node *CreateNode
}

func ConnectTo(id string) ParentRef {
	return ParentRef{Kind: ParentConnect, ID: id}
}

func CreateInline(node *CreateNode) ParentRef {
	return ParentRef{Kind: ParentCreate, ID: node.Message.ID, Node: node}
}

func Disconnect() ParentRef {
	return ParentRef{Kind: ParentDisconnect}
}

// ParentID returns the id the row ends up pointing at, nil for roots.
func (p ParentRef) ParentID() *string {
	switch p.Kind {
	case ParentConnect, ParentCreate:
		id := p.ID
		return &id
	default:
		return nil
	}
}

type parentConnect struct {
	ID string `json:"id"`
}

type parentRefJSON struct {
	Connect    *parentConnect `json:"connect,omitempty"`
	Create     *CreateNode    `json:"create,omitempty"`
	Disconnect bool           `json:"disconnect,omitempty"`
}

func (p ParentRef) MarshalJSON() ([]byte, error) {
	var out parentRefJSON
	switch p.Kind {
	case ParentNone:
	case ParentConnect:
		out.Connect = &parentConnect{ID: p.ID}
	case ParentCreate:
		out.Create = p.Node
	case ParentDisconnect:
		out.Disconnect = true
	default:
		return nil, fmt.Errorf("unknown parent ref kind %d", p.Kind)
	}

	return json.Marshal(out)
}

func (p *ParentRef) UnmarshalJSON(data []byte) error {
	var in parentRefJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch {
	case in.Create != nil:
		*p = CreateInline(in.Create)
	case in.Connect != nil:
		*p = ConnectTo(in.Connect.ID)
	case in.Disconnect:
		*p = Disconnect()
	default:
		*p = ParentRef{}
	}

	return nil
}

type ParentChange struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id"`
}

type Summary struct {
	Create []ParentChange `json:"create"`
	Update []ParentChange `json:"update"`
}
