package dtos

type CreateCustomerRequest struct {
	Name     string   `json:"name" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Category string   `json:"category" validate:"omitempty,oneof=owner buyer lessor tenant other"`
	Source   string   `json:"source"`
	City     string   `json:"city"`
	District string   `json:"district"`
	Budget   float64  `json:"budget" validate:"gte=0"`
	Notes    string   `json:"notes"`
	Tags     []string `json:"tags"`
}

// UpdateCustomerRequest is a patch: absent fields stay untouched.
type UpdateCustomerRequest struct {
	Name     *string   `json:"name,omitempty"`
	Category *string   `json:"category,omitempty" validate:"omitempty,oneof=owner buyer lessor tenant other"`
	Source   *string   `json:"source,omitempty"`
	City     *string   `json:"city,omitempty"`
	District *string   `json:"district,omitempty"`
	Budget   *float64  `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Notes    *string   `json:"notes,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Status   *string   `json:"status,omitempty" validate:"omitempty,oneof=new contacted negotiating closed lost"`
}
