package dto

type AddItemInput struct {
	CategoryID int
	Name       string `validate:"required"`
	Stock      int    `validate:"gte=0"`
	UnitPrice  int64  `validate:"gte=0"`
}

type UpdateItemInput struct {
	CategoryID  int
	DisplayCode string
	// Nil means keep the current value.
	Name      *string `validate:"omitempty,min=1"`
	Stock     *int    `validate:"omitempty,gte=0"`
	UnitPrice *int64  `validate:"omitempty,gte=0"`
}
