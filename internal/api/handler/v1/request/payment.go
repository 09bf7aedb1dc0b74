package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePaymentRequest struct {
	Method      string `json:"method" binding:"required"`
	PaymentType string `json:"payment_type" binding:"required"`
}

func (req *CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Method, validation.Required,
			validation.In("card", "manual_transfer")),
		validation.Field(&req.PaymentType, validation.Required,
			validation.In("deposit", "full")),
	)
}

type VerifySessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (req *VerifySessionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SessionID, validation.Required),
	)
}

type SyncPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (req *SyncPaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("pending", "completed", "failed")),
	)
}
