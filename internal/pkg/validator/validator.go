package validator

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/s21platform/chat-tree-service/internal/model"
)

const (
	MaxContentLength = 4000
	MaxBatchSize     = 500
	MaxFactsIDs      = 1000
)

var isUUID = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
})

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateBatch checks the shape of a batch only. Tree consistency is left to the tree engine.
func (v *Validator) ValidateBatch(streamID string, batch *model.MessageBatch) error {
	if err := validation.Validate(streamID, validation.Required, isUUID); err != nil {
		return fmt.Errorf("stream_id: %w", err)
	}

	if size := len(batch.Create) + len(batch.Update) + len(batch.Delete); size > MaxBatchSize {
		return fmt.Errorf("batch holds %d operations, maximum is %d", size, MaxBatchSize)
	}

	for i := range batch.Create {
		c := &batch.Create[i]
		err := validation.ValidateStruct(c,
			validation.Field(&c.ID, validation.Required, isUUID),
			validation.Field(&c.ParentID, validation.NilOrNotEmpty, isUUID),
			validation.Field(&c.Type, validation.In(model.TextMessageType).Error("message type is not supported yet")),
			validation.Field(&c.Content, validation.Required, validation.RuneLength(1, MaxContentLength)),
		)
		if err != nil {
			return fmt.Errorf("create[%d]: %w", i, err)
		}
	}

	for i := range batch.Update {
		u := &batch.Update[i]
		err := validation.ValidateStruct(u,
			validation.Field(&u.ID, validation.Required, isUUID),
			validation.Field(&u.Content, validation.NilOrNotEmpty, validation.RuneLength(1, MaxContentLength)),
		)
		if err != nil {
			return fmt.Errorf("update[%d]: %w", i, err)
		}
	}

	for i, id := range batch.Delete {
		if err := validation.Validate(id, validation.Required, isUUID); err != nil {
			return fmt.Errorf("delete[%d]: %w", i, err)
		}
	}

	return nil
}

func (v *Validator) ValidateFactsRequest(req *model.FactsRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.StreamIDs,
			validation.When(len(req.MessageIDs) == 0, validation.Required.Error("stream_ids or message_ids is required")),
			validation.Length(0, MaxFactsIDs),
			validation.Each(validation.Required, isUUID),
		),
		validation.Field(&req.MessageIDs,
			validation.Length(0, MaxFactsIDs),
			validation.Each(validation.Required, isUUID),
		),
	)
}
