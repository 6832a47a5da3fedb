package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/pkg/database"
	errprocess "gamer_social_service/pkg/err"
	"gamer_social_service/pkg/logger"

	"github.com/streadway/amqp"
)

// TicketUseCase - 客服單的建立、回覆與狀態流轉
type TicketUseCase struct {
	ticketRepo    repository.TicketRepo
	rabbitChannel database.RabbitRepo
}

// NewTicketUseCase init ticket use case
func NewTicketUseCase(ticketRepo repository.TicketRepo, rabbitChannel database.RabbitRepo) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo:    ticketRepo,
		rabbitChannel: rabbitChannel,
	}
}

// Create 建立客服單並發布工作訊息到佇列，worker 會非同步處理
func (uc *TicketUseCase) Create(ctx context.Context, reporterID, subject, body string) (*domain.SupportTicket, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, errors.New("subject is required")
	}

	ticket := &domain.SupportTicket{
		ReporterID: reporterID,
		Subject:    subject,
		Body:       body,
		Status:     domain.TicketOpen,
	}
	if err := uc.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}

	job := domain.TicketJob{
		TicketID:   ticket.ID,
		ReporterID: ticket.ReporterID,
		Subject:    ticket.Subject,
	}
	data, err := json.Marshal(job)
	if err != nil {
		errMsg := fmt.Sprintf("ticket[%d] job 序列化失敗 : %v", ticket.ID, err)
		return nil, errprocess.Set(errMsg)
	}
	err = uc.rabbitChannel.Publish(
		"",                     // 預設 exchange
		domain.TicketQueueName, // queue 名稱
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
	if err != nil {
		errMsg := fmt.Sprintf("ticket[%d] 發送 RabbitMQ 訊息失敗 : %v", ticket.ID, err)
		return nil, errprocess.Set(errMsg)
	}

	return ticket, nil
}

// Get 取單一客服單，只有回報者本人或客服可以看
func (uc *TicketUseCase) Get(ctx context.Context, userID string, isStaff bool, ticketID uint) (*domain.SupportTicket, error) {
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, errors.New("ticket not found")
	}
	if !isStaff && ticket.ReporterID != userID {
		return nil, errors.New("not the reporter")
	}
	return ticket, nil
}

// ListMine 回報者自己的客服單
func (uc *TicketUseCase) ListMine(ctx context.Context, userID string) ([]domain.SupportTicket, error) {
	return uc.ticketRepo.ListByReporter(userID)
}

// ListByStatus 後台依狀態撈客服單
func (uc *TicketUseCase) ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	return uc.ticketRepo.ListByStatus(status)
}

// Respond 回覆客服單
// 客服第一次回覆時單子自動從 open 進入 in_progress
func (uc *TicketUseCase) Respond(ctx context.Context, ticketID uint, authorID, body string, staff bool) (*domain.TicketReply, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("body is required")
	}
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, errors.New("ticket not found")
	}
	if !staff && ticket.ReporterID != authorID {
		return nil, errors.New("not the reporter")
	}
	if ticket.Status == domain.TicketClosed {
		return nil, errors.New("ticket already closed")
	}

	reply := &domain.TicketReply{
		TicketID: ticketID,
		AuthorID: authorID,
		Body:     body,
		Staff:    staff,
	}
	if err := uc.ticketRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	if staff && ticket.Status == domain.TicketOpen {
		ticket.Status = domain.TicketInProgress
		if err := uc.ticketRepo.Update(ticket); err != nil {
			logger.Log.Errorf("update ticket status failed: ", err)
		}
	}
	return reply, nil
}

// UpdateStatus 後台更新客服單狀態，不合法的流轉會被擋下
func (uc *TicketUseCase) UpdateStatus(ctx context.Context, ticketID uint, to domain.TicketStatus) error {
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return errors.New("ticket not found")
	}
	if !ticket.Status.CanTransition(to) {
		return fmt.Errorf("can not transition from %s to %s", ticket.Status, to)
	}
	ticket.Status = to
	return uc.ticketRepo.Update(ticket)
}
