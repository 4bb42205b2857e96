package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
	"github.com/medcare-africa/medcare-api/internal/service"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context(), domain.Role(c.Query("role")))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"users": users})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "User not found")
	if !ok {
		return
	}

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"user": u})
}

type updateUserRequest struct {
	Email            *string      `json:"email"`
	Name             *string      `json:"name"`
	Role             *domain.Role `json:"role"`
	Phone            *string      `json:"phone"`
	Address          *string      `json:"address"`
	Specialization   *string      `json:"specialization"`
	License          *string      `json:"license"`
	Department       *string      `json:"department"`
	DateOfBirth      *string      `json:"dateOfBirth"`
	BloodType        *string      `json:"bloodType"`
	Allergies        *[]string    `json:"allergies"`
	EmergencyContact *string      `json:"emergencyContact"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "User not found")
	if !ok {
		return
	}

	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, &user.UpdateUserCommand{
		Email:            req.Email,
		Name:             req.Name,
		Role:             req.Role,
		Phone:            req.Phone,
		Address:          req.Address,
		Specialization:   req.Specialization,
		License:          req.License,
		Department:       req.Department,
		DateOfBirth:      req.DateOfBirth,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"user":    u,
		"message": "User updated successfully",
	})
}
