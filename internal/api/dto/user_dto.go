package dto

import "time"

// UserDTO 用户
type UserDTO struct {
	UserID         *uint64    `json:"user_id,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Segment        *string    `json:"segment,omitempty"`
	OnboardingDone *bool      `json:"onboarding_done,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// UpdateUserDTO 资料更新，segment 一经填写即视为完成引导
type UpdateUserDTO struct {
	Segment *string `json:"segment,omitempty" validate:"omitempty,oneof=INTERNSHIP FRESHER_OR_LESS_THAN_1_YEAR ONE_TO_THREE_YEARS"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
}
