package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("notify booking person %d: %s ticket %s train %d %s -> %s fare %d\n",
		event.BookingPersonID, event.Type, event.Token, event.TrainID, event.FromStation, event.ToStation, event.TotalFare)
	return nil
}
