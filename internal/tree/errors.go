package tree

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDuplicateID   = errors.New("duplicate message id")
	ErrUnknownParent = errors.New("unknown parent")
	ErrCycle         = errors.New("message tree cycle")
)

type (
	// DuplicateIDError reports an id listed more than once across create, update and delete.
	DuplicateIDError struct {
		ID    string
		First string
		Again string
	}

	UnknownParentError struct {
		ID       string
		ParentID string
		Reason   string
	}

	// CycleError reports a create that is, directly or transitively, its own ancestor.
	CycleError struct {
		ID string
	}
)

func (e *DuplicateIDError) Error() string {
	if e.First == e.Again {
		return fmt.Sprintf("message %s listed twice in %s", e.ID, e.First)
	}
	return fmt.Sprintf("message %s listed in both %s and %s", e.ID, e.First, e.Again)
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("message %s: parent %s %s", e.ID, e.ParentID, e.Reason)
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("message %s is its own ancestor", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool   { return target == ErrDuplicateID }
func (e *UnknownParentError) Is(target error) bool { return target == ErrUnknownParent }
func (e *CycleError) Is(target error) bool         { return target == ErrCycle }

func (e *DuplicateIDError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnknownParentError) StatusCode() int { return http.StatusBadRequest }
func (e *CycleError) StatusCode() int         { return http.StatusBadRequest }
