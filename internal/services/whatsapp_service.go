package services

import "order_manager/pkg/whatsapp"

// WhatsAppService sends a text message and returns the gateway's delivery
// status string, which feeds OTPService.ParseSendStatus.
type WhatsAppService interface {
	SendMessage(phone, message string) (string, error)
}

type whatsappService struct {
	client *whatsapp.Client
}

func NewWhatsAppService(client *whatsapp.Client) WhatsAppService {
	return &whatsappService{client: client}
}

func (s *whatsappService) SendMessage(phone, message string) (string, error) {
	resp, err := s.client.SendTextMessage(phone, message)
	if err != nil {
		return "", err
	}

	if resp.Data.Status != "" {
		return resp.Data.Status, nil
	}
	return resp.Message, nil
}
