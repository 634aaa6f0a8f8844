package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samuelnapitupulu18/NusaCare/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	WiFiID   string `json:"wifiId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type payRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, s.telemetry.Diagnostics())
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	s.logger.Info(c.Request.Context(), "Registration request")

	userID, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.WiFiID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, common.ErrorInvalidWiFiID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid WiFi ID Format. Must start with NUSA-"})
		case errors.Is(err, common.ErrorEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, common.ErrorWiFiIDTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "WiFi ID already claimed"})
		default:
			s.logger.Error(c.Request.Context(), err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "userId": userID})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, user, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (s *Server) pay(c *gin.Context) {
	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment request"})
		return
	}

	if claims, ok := ClaimsFromContext(c); ok {
		s.logger.Info(c.Request.Context(), "Payment request", "subject", claims.Subject)
	}

	receipt, err := s.billing.Pay(c.Request.Context(), req.Amount, req.Method)
	if err != nil {
		if errors.Is(err, common.ErrorPaymentDeclined) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment declined by bank"})
			return
		}
		// client gone mid-delay or unexpected failure
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (s *Server) transactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.billing.Transactions(c.Request.Context()))
}

func (s *Server) createTicket(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Ticket created", "id": s.tickets.Create()})
}

func (s *Server) rateTicket(c *gin.Context) {
	var req struct {
		Score int `json:"score"`
	}
	_ = c.ShouldBindJSON(&req)
	s.tickets.Rate(c.Param("id"), req.Score)
	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted"})
}
