package app

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/internal/chat/repository"
	"gamer_social_service/pkg/logger"
	"gamer_social_service/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// ChatWebsocketHandler 可包含所有需要的 UseCase
type ChatWebsocketHandler struct {
	roomUC    *RoomUseCase
	messageUC *SendMessageUseCase
	pubSub    repository.PubSub
}

// NewChatWebsocketHandler create ChatWebsocketHandler
func NewChatWebsocketHandler(
	roomUC *RoomUseCase,
	messageUC *SendMessageUseCase,
	pubSub repository.PubSub,
) *ChatWebsocketHandler {
	return &ChatWebsocketHandler{
		roomUC:    roomUC,
		messageUC: messageUC,
		pubSub:    pubSub,
	}
}

// wsSession 單一連線的狀態，房間訂閱的 cancel 依 roomID 保存
// enter/leave 必須成對，連線結束時全部取消
type wsSession struct {
	memberID    string
	conn        *websocket.Conn
	roomCancels map[string]context.CancelFunc
}

func (s *wsSession) cancelRoom(roomID string) {
	if cancel, ok := s.roomCancels[roomID]; ok {
		cancel()
		delete(s.roomCancels, roomID)
	}
}

func (s *wsSession) cancelAll() {
	for roomID, cancel := range s.roomCancels {
		cancel()
		delete(s.roomCancels, roomID)
	}
}

// HandleConnection 是 WebSocket 連線的進入點
func (h *ChatWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	tokenMember := conn.Locals(middlewares.TokenUserID)
	memberID, ok := tokenMember.(string)
	logger.Log.Info("websocket handle memberID", zap.String("userID", memberID), zap.String("ok", strconv.FormatBool(ok)))

	session := &wsSession{
		memberID:    memberID,
		conn:        conn,
		roomCancels: make(map[string]context.CancelFunc),
	}

	ticker := time.NewTicker(10 * time.Minute)
	ctxClose, cancel := context.WithCancel(context.Background())

	defer func() {
		ticker.Stop()
		logger.Log.Info("websocket close", zap.String("userID", memberID))
		session.cancelAll()
		conn.Close()
		cancel()
	}()

	//client發出close
	//fiber會自動處理(在read msg 回傳err),故需要SetCloseHandler另外接出
	conn.SetCloseHandler(func(code int, text string) error {
		logger.Log.Infof("WebSocket closed:", conn.RemoteAddr())
		return nil
	})

	//server發出ping之後client連線正常會回pong
	//fiber會自動處理回傳pong,故需要SetPongHandler另外接出
	conn.SetPongHandler(func(appData string) error {
		logger.Log.Infof("Received PONG:", appData)
		return nil
	})

	//client發出ping
	//fiber會自動處理ping,故需要SetPingHandler另外接出
	conn.SetPingHandler(func(appData string) error {
		logger.Log.Infof("Received PING:", appData)
		return conn.WriteControl(
			websocket.PongMessage,
			[]byte(appData),
			time.Now().Add(time.Second),
		)
	})

	//啟用sub訂閱自己的個人 channel，接收 direct 訊息與通知推播
	h.pubSub.Subscribe(ctxClose, domain.UserChannel(memberID), func(event domain.PushEvent) {
		h.sendPush(conn, event)
	})

	// 定期發送 Ping
	go func() {
		for {
			select {
			case <-ticker.C:
				pingMsg := "ping message"
				if err := conn.WriteMessage(websocket.PingMessage, []byte(pingMsg)); err != nil {
					logger.Log.Errorf("Ping error:", err)
					return
				}
				logger.Log.Infof("Ping sent:", memberID)
			case <-ctxClose.Done():
				logger.Log.Infof("Ping goroutine cancelled for member:", memberID)
				return
			}
		}
	}()

	for {
		// 1. 讀取前端訊息
		mt, message, err := conn.ReadMessage()
		if err != nil {
			// 檢查是否為 Close 正常結束
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived, //1005 c.WriteMessage(websocket.CloseMessage, []byte{})
			) {
				logger.Log.Errorf("Connection closed:", err)
			} else {
				//直接斷線 1006
				logger.Log.Errorf("websocket read error:", err)
			}
			return
		}
		h.execWebsocketAction(ctx, session, mt, message)
	}
}

func (h *ChatWebsocketHandler) execWebsocketAction(ctx context.Context, session *wsSession, mt int, msg []byte) {
	switch mt {
	case websocket.TextMessage:
		h.textMessageAction(ctx, session, msg)

	//! close ping pong fiber會自動處理，故需使用setHandler處理
	default:
		h.sendError(session.conn, "unknown action")
	}
}

func (h *ChatWebsocketHandler) textMessageAction(ctx context.Context, session *wsSession, msg []byte) {
	memberID := session.memberID
	conn := session.conn

	var req domain.WSRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		logger.Log.Errorf("json unmarshal error:", err)
		return
	}

	resp := domain.WSResponse{Action: req.Action, Success: false, Payload: map[string]interface{}{}}
	switch req.Action {
	//開啟 1對1 聊天室，不存在時建立
	case string(domain.OpenDirect):
		roomID, err := h.roomUC.OpenDirect(ctx, memberID, req.FriendID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["room_id"] = roomID
		}

	//建立社群
	case string(domain.CreateCommunity):
		roomID, err := h.roomUC.CreateCommunity(
			ctx,
			memberID,
			req.RoomName,
			domain.JoinMode(req.JoinMode),
			req.Password,
		)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["room_id"] = roomID
		}

	//加入社群
	case string(domain.JoinCommunity):
		err := h.roomUC.JoinCommunity(ctx, req.RoomID, memberID, req.Password)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
		}

	//離開社群
	case string(domain.ExitCommunity):
		session.cancelRoom(req.RoomID)
		err := h.roomUC.ExitCommunity(ctx, req.RoomID, memberID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
		}

	//進入聊天室，回傳歷史訊息並訂閱房間 channel
	case string(domain.EnterRoom):
		history, err := h.messageUC.GetHistory(ctx, req.RoomID, memberID, req.Before)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.Success = true
		resp.Payload["messages"] = history

		// 重複 enter 同一房間時先取消舊訂閱，避免重複推播
		session.cancelRoom(req.RoomID)
		ctxEnterRoom, cancel := context.WithCancel(context.Background())
		session.roomCancels[req.RoomID] = cancel

		h.pubSub.Subscribe(ctxEnterRoom, domain.RoomChannel(req.RoomID), func(event domain.PushEvent) {
			// 自己發的訊息不用再推回來
			if event.Message != nil && event.Message.SenderID == memberID {
				return
			}
			h.sendPush(conn, event)
		})

	//離開聊天室，取消房間訂閱
	case string(domain.LeaveRoom):
		session.cancelRoom(req.RoomID)
		resp.Success = true
		resp.Payload["leave_room"] = req.RoomID

	//傳送資料
	//message都會寫入db,並傳訊給聊天室內的人
	case string(domain.SendMessage):
		msgID, err := h.messageUC.Execute(ctx, req.RoomID, memberID, req.Content)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["message_id"] = msgID
		}

	//讀取訊息  將未讀訊息改為已讀
	case string(domain.ReadMessage):
		err := h.messageUC.MarkRead(ctx, req.RoomID, req.MessageID, memberID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
		}

	//搜尋所有未讀訊息
	case string(domain.GetUnread):
		unreads, err := h.messageUC.GetCountUnreadMessages(ctx, memberID)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			for _, unread := range unreads {
				resp.Payload[unread.RoomID] = unread.UnreadCount
			}
		}

	//拉取歷史訊息
	case string(domain.GetHistory):
		history, err := h.messageUC.GetHistory(ctx, req.RoomID, memberID, req.Before)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["messages"] = history
		}

	default:
		h.sendError(conn, "unknown message types ")
	}

	if resp.Error != "" {
		logger.Log.Error("websocket err ", zap.String("MemberID", memberID), zap.String("Action", req.Action), zap.String("err", resp.Error))
	}
	h.sendResponse(conn, resp)
}

// sendPush pubsub 推播轉成 WSResponse 發給前端
func (h *ChatWebsocketHandler) sendPush(conn *websocket.Conn, event domain.PushEvent) {
	resp := domain.WSResponse{
		Action:  event.Event,
		Success: true,
		Payload: map[string]interface{}{},
	}
	if event.RoomID != "" {
		resp.Payload["room_id"] = event.RoomID
	}
	if event.Message != nil {
		resp.Payload["message_id"] = event.Message.ID
		resp.Payload["sender_id"] = event.Message.SenderID
		resp.Payload["message"] = event.Message.Content
		resp.Payload["timestamp"] = event.Message.Timestamp
	}
	for k, v := range event.Payload {
		resp.Payload[k] = v
	}
	h.sendResponse(conn, resp)
}

// sendResponse - 發送 JSON 給前端
func (h *ChatWebsocketHandler) sendResponse(conn *websocket.Conn, resp domain.WSResponse) {
	b, _ := json.Marshal(resp)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		logger.Log.Errorf("write message error:", err)
	}
}

func (h *ChatWebsocketHandler) sendError(conn *websocket.Conn, errorMsg string) {
	resp := domain.WSResponse{
		Action:  "error",
		Success: false,
		Payload: map[string]interface{}{
			"error": errorMsg,
		},
	}
	h.sendResponse(conn, resp)
}
