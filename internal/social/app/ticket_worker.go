package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/pkg/logger"

	"github.com/streadway/amqp" // RabbitMQ 客戶端
)

// TicketWorker 消費客服單佇列，將所有必要的依賴注入進來
type TicketWorker struct {
	rabbitChannel *amqp.Channel
	ticketRepo    repository.TicketRepo
	notifRepo     repository.NotificationRepo
	publisher     repository.NotifyPublisher
	queueName     string
}

// NewTicketWorker 建構 TicketWorker 實例
func NewTicketWorker(
	rabbitChannel *amqp.Channel,
	ticketRepo repository.TicketRepo,
	notifRepo repository.NotificationRepo,
	publisher repository.NotifyPublisher,
	queueName string,
) *TicketWorker {
	return &TicketWorker{
		rabbitChannel: rabbitChannel,
		ticketRepo:    ticketRepo,
		notifRepo:     notifRepo,
		publisher:     publisher,
		queueName:     queueName,
	}
}

// StartConsumer 開始消費訊息，處理新客服單的受理流程
func (w *TicketWorker) StartConsumer(ctx context.Context) {
	// 設定消費該 queue
	msgs, err := w.rabbitChannel.Consume(
		w.queueName, // 使用依賴注入進來的 queue name
		"",          // consumer tag，留空由系統分配
		false,       // autoAck 為 false，使用手動確認
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // arguments
	)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("無法開始消費 RabbitMQ 訊息: %v", err))
	}

	logger.Log.Info("ticket worker 已啟動，等待客服單工作訊息...")

	// 持續監聽訊息
	for {
		select {
		case d, ok := <-msgs:
			if !ok {
				logger.Log.Info("RabbitMQ 消費 channel 已關閉")
				return
			}
			w.handleDelivery(ctx, d)
		case <-ctx.Done():
			logger.Log.Info("ticket worker 收到停止訊號")
			return
		}
	}
}

// handleDelivery 處理單筆佇列訊息，依結果 ack / nack
func (w *TicketWorker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var job domain.TicketJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		// 格式錯誤的訊息重排只會無限重送，直接丟棄
		logger.Log.Errorf("解析客服單工作訊息失敗: ", err)
		if err := d.Nack(false, false); err != nil {
			logger.Log.Errorf("Nack 訊息失敗: ", err)
		}
		return
	}

	if err := w.processTicketJob(ctx, job); err != nil {
		// 處理失敗時，拒絕訊息並重新排入佇列
		logger.Log.Errorf("處理客服單工作失敗:", err)
		time.Sleep(10 * time.Second)
		if err := d.Nack(false, true); err != nil {
			logger.Log.Errorf("Nack 訊息失敗: ", err)
		}
		return
	}

	// 處理成功後，確認訊息
	if err := d.Ack(false); err != nil {
		logger.Log.Errorf("確認訊息失敗: ", err)
	}
}

// processTicketJob 客服單受理流程：
// 1. 確認單子還在
// 2. 發受理通知給回報者，讓他知道單子已進入處理流程
func (w *TicketWorker) processTicketJob(ctx context.Context, job domain.TicketJob) error {
	ticket, err := w.ticketRepo.GetByID(job.TicketID)
	if err != nil {
		return fmt.Errorf("從資料庫取得客服單失敗: %w", err)
	}

	n := domain.Notification{
		RecipientID: ticket.ReporterID,
		Category:    domain.CategoryOthers,
		EventType:   "ticket_received",
		Content:     ticket.Subject,
		RefID:       fmt.Sprintf("%d", ticket.ID),
		CreatedAt:   time.Now(),
	}
	if err := w.notifRepo.Create(&n); err != nil {
		return fmt.Errorf("建立受理通知失敗: %w", err)
	}
	if err := w.publisher.PushToUser(ctx, n.RecipientID, n); err != nil {
		// 收件者不在線上推播失敗沒關係，通知已經落庫
		logger.Log.Errorf("推播受理通知失敗: ", err)
	}
	return nil
}
