package services

import "context"

// Crud is the capability shared by every aggregate service: list and find
// return projections directly, mutations return the envelope.
type Crud[Dto any] interface {
	List(ctx context.Context) ([]Dto, error)
	Find(ctx context.Context, id uint) (*Dto, error)
	Add(ctx context.Context, dto Dto) ServiceResponse
	Update(ctx context.Context, id uint, dto Dto) ServiceResponse
	Delete(ctx context.Context, id uint) ServiceResponse
}
