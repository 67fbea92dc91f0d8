package errors

import (
	stdErrors "errors"
	"testing"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/order"
	"shop/domain/shared"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"order not found", order.NewOrderNotFoundError("o-1"), CodeOrderNotFound},
		{"member not found", member.NewMemberNotFoundError("m-1"), CodeMemberNotFound},
		{"item not found", item.NewItemNotFoundError("i-1"), CodeItemNotFound},
		{"not enough stock", item.NewNotEnoughStockError("i-1", 1, 2), CodeNotEnoughStock},
		{"already cancelled", order.NewAlreadyCancelledError("o-1"), CodeInvalidOrderState},
		{"already delivered", order.NewAlreadyDeliveredError("o-1"), CodeInvalidOrderState},
		{"duplicate name", member.NewDuplicateNameError("kim"), CodeDuplicateName},
		{"empty order items", order.ErrEmptyOrderItems, CodeValidation},
		{"invalid count", order.ErrInvalidCount, CodeValidation},
		{"validation", shared.NewValidationError("item", "name", "empty"), CodeValidation},
		{"unknown", stdErrors.New("driver broke"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomainError(tt.err)
			if appErr.Code != tt.want {
				t.Errorf("FromDomainError() code = %v, want %v", appErr.Code, tt.want)
			}
			// Wrapped causes must stay reachable through errors.Is.
			if !stdErrors.Is(appErr, tt.err) {
				t.Error("FromDomainError() lost the cause chain")
			}
		})
	}
}

func TestFromDomainErrorNil(t *testing.T) {
	if got := FromDomainError(nil); got != nil {
		t.Errorf("FromDomainError(nil) = %v, want nil", got)
	}
}

func TestFromDomainErrorPassesThroughAppError(t *testing.T) {
	orig := BadRequest("bad input")
	if got := FromDomainError(orig); got != orig {
		t.Errorf("FromDomainError() = %v, want the original AppError", got)
	}
}

func TestIs(t *testing.T) {
	err := NotFound("nope")
	if !Is(err, CodeNotFound) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, CodeConflict) {
		t.Error("Is() = true for a different code")
	}
	if Is(stdErrors.New("plain"), CodeNotFound) {
		t.Error("Is() = true for a non-AppError")
	}
}

func TestInternalMessageHidesDetail(t *testing.T) {
	appErr := FromDomainError(stdErrors.New("connection refused to 10.0.0.3"))
	if appErr.Code != CodeInternal {
		t.Fatalf("code = %v, want CodeInternal", appErr.Code)
	}
	if appErr.Message != "internal error" {
		t.Errorf("Message = %q, internals must not leak", appErr.Message)
	}
}
