package contact

import (
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"archarad-app/config"

	"github.com/gin-gonic/gin"
)

// POST /contact — relays an About-page message to the archive maintainers.
func Send(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Message) > 5000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is too long"})
		return
	}

	if err := sendContactMail(body.Name, body.Email, body.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}

func sendContactMail(name, replyTo, text string) error {
	if config.SMTP_HOST == "" || config.CONTACT_TO == "" {
		return fmt.Errorf("contact mail not configured")
	}

	auth := smtp.PlainAuth("", config.SMTP_FROM, config.SMTP_PASSWORD, config.SMTP_HOST)

	subject := fmt.Sprintf("ArchArad contact from %s", name)
	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + config.SMTP_FROM + "\r\n" +
		"To: " + config.CONTACT_TO + "\r\n" +
		"Reply-To: " + replyTo + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		strings.TrimSpace(text) + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, config.SMTP_FROM, []string{config.CONTACT_TO}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
