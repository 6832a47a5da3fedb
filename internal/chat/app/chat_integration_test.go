package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/internal/chat/repository"
	"gamer_social_service/pkg/database"
	"gamer_social_service/pkg/logger"
	"gamer_social_service/pkg/middlewares"
	testtool "gamer_social_service/pkg/test_tool"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// **測試用的容器**
var mongoContainer testcontainers.Container
var redisContainer testcontainers.Container
var chatApp *fiber.App
var chatHandler *ChatWebsocketHandler

const testMemberID = "user_123"

// **TestMain 初始化測試環境**
func TestMain(m *testing.M) {
	ctx := context.Background()
	logger.SetNewNop()

	// **啟動 MongoDB**
	mongoContainer, mongoHost, mongoPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})
	if err != nil {
		log.Fatalf("❌ Failed to start MongoDB container: %v", err)
	}
	fmt.Printf("✅ MongoDB running at %s:%s\n", mongoHost, mongoPort)

	// **啟動 Redis**
	redisContainer, redisHost, redisPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "redis:latest",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	})
	if err != nil {
		log.Fatalf("❌ Failed to start Redis container: %v", err)
	}
	fmt.Printf("✅ Redis running at %s:%s\n", redisHost, redisPort)

	// **初始化 MongoDB**
	mongo, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort),
		RetryCount:    5,
		RetryInterval: 5,
	}, "test_chat_db")
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer mongo.Close(ctx)

	// **初始化 Redis**
	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
		DB:   0,
	})

	// **初始化 Repository**
	roomRepo := repository.NewMongoRoomRepository(mongo.Database)
	msgRepo := repository.NewMongoMessageRepository(mongo.Database)
	pub := repository.NewRedisPubSub(redisClient)

	// **初始化 UseCases**
	roomUC := NewRoomUseCase(roomRepo)
	sendMessageUC := NewSendMessageUseCase(roomRepo, msgRepo, pub, nil)

	// **初始化 Fiber WebSocket Server**
	chatHandler = NewChatWebsocketHandler(roomUC, sendMessageUC, pub)

	chatApp = fiber.New()
	// 測試環境跳過 JWT，直接塞入身分
	chatApp.Use(func(c *fiber.Ctx) error {
		c.Locals(middlewares.TokenUserID, testMemberID)
		return c.Next()
	})
	chatApp.Get("/ws", websocket.New(func(c *websocket.Conn) {
		chatHandler.HandleConnection(context.Background(), c)
	}))

	// **啟動 WebSocket Server**
	go func() {
		err := chatApp.Listen(":8081")
		if err != nil {
			log.Fatalf("❌ Failed to start WebSocket server: %v", err)
		}
	}()
	fmt.Println("✅ WebSocket Server started at ws://localhost:8081/ws")

	// **等待 WebSocket Server 啟動**
	time.Sleep(5 * time.Second)

	// **執行測試**
	code := m.Run()

	// **清理測試環境**
	_ = mongoContainer.Terminate(ctx)
	_ = redisContainer.Terminate(ctx)
	chatApp.Shutdown()

	os.Exit(code)
}

func dialWS(t *testing.T) *gws.Conn {
	conn, _, err := gws.DefaultDialer.Dial("ws://127.0.0.1:8081/ws", nil)
	assert.NoError(t, err, "WebSocket 連線失敗")
	return conn
}

func sendAndRead(t *testing.T, conn *gws.Conn, req string) domain.WSResponse {
	err := conn.WriteMessage(gws.TextMessage, []byte(req))
	assert.NoError(t, err, "發送請求失敗")

	_, response, err := conn.ReadMessage()
	assert.NoError(t, err, "接收回應失敗")

	var resp domain.WSResponse
	assert.NoError(t, json.Unmarshal(response, &resp))
	return resp
}

// ✅ 1️⃣ WebSocket 連線測試
func TestFiberWebSocketConnection(t *testing.T) {
	conn := dialWS(t)
	defer conn.Close()

	resp := sendAndRead(t, conn, `{"action": "bogus"}`)
	assert.False(t, resp.Success)
}

// ✅ 2️⃣ 1對1 聊天流程測試
func TestDirectMessageFlow(t *testing.T) {
	conn := dialWS(t)
	defer conn.Close()

	// 開啟 1對1 聊天室
	resp := sendAndRead(t, conn, `{"action": "open_direct", "friend_id": "user_456"}`)
	assert.True(t, resp.Success, "open_direct 失敗: %s", resp.Error)
	roomID, _ := resp.Payload["room_id"].(string)
	assert.Equal(t, domain.DirectRoomID(testMemberID, "user_456"), roomID)

	// 進入聊天室
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "enter_room", "room_id": %q}`, roomID))
	assert.True(t, resp.Success, "enter_room 失敗: %s", resp.Error)

	// 發送訊息
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "send_message", "room_id": %q, "content": "Hello, World!"}`, roomID))
	assert.True(t, resp.Success, "send_message 失敗: %s", resp.Error)
	msgID, _ := resp.Payload["message_id"].(string)
	assert.NotEmpty(t, msgID)

	// 歷史訊息包含剛發的那則
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "get_history", "room_id": %q}`, roomID))
	assert.True(t, resp.Success, "get_history 失敗: %s", resp.Error)

	// 讀取訊息
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "read_message", "room_id": %q, "message_id": %q}`, roomID, msgID))
	assert.True(t, resp.Success, "read_message 失敗: %s", resp.Error)

	// 離開聊天室
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "leave_room", "room_id": %q}`, roomID))
	assert.True(t, resp.Success, "leave_room 失敗: %s", resp.Error)
}

// ✅ 3️⃣ 社群聊天流程測試
func TestCommunityFlow(t *testing.T) {
	conn := dialWS(t)
	defer conn.Close()

	// 建立社群
	resp := sendAndRead(t, conn, `{"action": "create_community", "room_name": "Test Community", "join_mode": "open"}`)
	assert.True(t, resp.Success, "create_community 失敗: %s", resp.Error)
	roomID, _ := resp.Payload["room_id"].(string)
	assert.NotEmpty(t, roomID)

	// 加入社群（已是成員也允許）
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "join_community", "room_id": %q}`, roomID))
	assert.True(t, resp.Success, "join_community 失敗: %s", resp.Error)

	// 發送訊息
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "send_message", "room_id": %q, "content": "Hello, Community!"}`, roomID))
	assert.True(t, resp.Success, "send_message 失敗: %s", resp.Error)

	// 查詢未讀
	resp = sendAndRead(t, conn, `{"action": "get_unread"}`)
	assert.True(t, resp.Success, "get_unread 失敗: %s", resp.Error)

	// 離開社群
	resp = sendAndRead(t, conn, fmt.Sprintf(`{"action": "exit_community", "room_id": %q}`, roomID))
	assert.True(t, resp.Success, "exit_community 失敗: %s", resp.Error)
}
