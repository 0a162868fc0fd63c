package dto

type CreateCategoryInput struct {
	Name       string `validate:"required"`
	CodePrefix string `validate:"required,alpha,min=2,max=4"`
}

type UpdateCategoryInput struct {
	ID int
	// Nil means keep the current value.
	Name       *string `validate:"omitempty,min=1"`
	CodePrefix *string `validate:"omitempty,alpha,min=2,max=4"`
}
