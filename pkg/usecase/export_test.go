package usecase

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/model"
)

// Test hooks

func (u *MemberUseCase) SetSleepForTest(f func(time.Duration)) {
	u.sleep = f
}

func ValidateAnswers(form *model.FormDefinition, answers model.Answers) error {
	return validateAnswers(form, answers)
}
