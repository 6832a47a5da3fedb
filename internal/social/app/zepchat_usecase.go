package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gamer_social_service/internal/social/domain"
	"gamer_social_service/internal/social/repository"
	"gamer_social_service/pkg/logger"
)

// 投票目標
const (
	// VoteTargetZepChat 對討論串投票
	VoteTargetZepChat = "zepchat"
	// VoteTargetReply 對回覆投票
	VoteTargetReply = "reply"
)

// VoteResult 投票後回給前端的結果
type VoteResult struct {
	Op    string `json:"op"`
	Score int    `json:"score"`
}

// ZepChatUseCase - 問答討論串與投票
type ZepChatUseCase struct {
	zepRepo   repository.ZepChatRepo
	notifRepo repository.NotificationRepo
	publisher repository.NotifyPublisher
}

// NewZepChatUseCase init zep chat use case
func NewZepChatUseCase(
	zepRepo repository.ZepChatRepo,
	notifRepo repository.NotificationRepo,
	publisher repository.NotifyPublisher,
) *ZepChatUseCase {
	return &ZepChatUseCase{
		zepRepo:   zepRepo,
		notifRepo: notifRepo,
		publisher: publisher,
	}
}

// Create 開新的討論串
func (uc *ZepChatUseCase) Create(ctx context.Context, authorID, title, content string) (*domain.ZepChat, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	z := &domain.ZepChat{
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		UpVoters:   domain.VoterList{},
		DownVoters: domain.VoterList{},
	}
	if err := uc.zepRepo.Create(z); err != nil {
		return nil, err
	}
	return z, nil
}

// Get 討論串內容含全部回覆
func (uc *ZepChatUseCase) Get(ctx context.Context, id uint) (*domain.ZepChat, error) {
	return uc.zepRepo.GetByID(id)
}

// List 關鍵字搜尋討論串，keyword 為空回傳最新的
func (uc *ZepChatUseCase) List(ctx context.Context, keyword string, limit, offset int) ([]domain.ZepChat, error) {
	return uc.zepRepo.Search(keyword, limit, offset)
}

// Reply 回覆討論串，發問者會收到 zepchats 分類的通知
func (uc *ZepChatUseCase) Reply(ctx context.Context, zepChatID uint, authorID, content string) (*domain.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content is required")
	}
	z, err := uc.zepRepo.GetByID(zepChatID)
	if err != nil {
		return nil, errors.New("zep chat not found")
	}

	reply := &domain.Reply{
		ZepChatID:  zepChatID,
		AuthorID:   authorID,
		Content:    content,
		UpVoters:   domain.VoterList{},
		DownVoters: domain.VoterList{},
	}
	if err := uc.zepRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	// 回自己的討論串不用通知自己
	if z.AuthorID != authorID {
		uc.notify(ctx, domain.Notification{
			RecipientID: z.AuthorID,
			EventType:   domain.EventZepChatReply,
			ActorID:     authorID,
			Content:     z.Title,
			RefID:       strconv.FormatUint(uint64(zepChatID), 10),
		})
	}
	return reply, nil
}

// Vote 對討論串或回覆投票
// 同方向再投是收回，反方向會先收回原本的票，server 端狀態為準
func (uc *ZepChatUseCase) Vote(ctx context.Context, target string, id uint, userID string, kind domain.VoteKind) (*VoteResult, error) {
	if kind != domain.VoteUp && kind != domain.VoteDown {
		return nil, errors.New("unknown vote kind")
	}

	switch target {
	case VoteTargetZepChat:
		z, err := uc.zepRepo.GetByID(id)
		if err != nil {
			return nil, errors.New("zep chat not found")
		}
		ups, downs, op := domain.ApplyVote(z.UpVoters, z.DownVoters, domain.VoterFor(userID), kind)
		z.UpVoters, z.DownVoters = ups, downs
		if err := uc.zepRepo.Update(z); err != nil {
			return nil, err
		}
		return &VoteResult{Op: op, Score: domain.Score(ups, downs)}, nil

	case VoteTargetReply:
		reply, err := uc.zepRepo.GetReply(id)
		if err != nil {
			return nil, errors.New("reply not found")
		}
		ups, downs, op := domain.ApplyVote(reply.UpVoters, reply.DownVoters, domain.VoterFor(userID), kind)
		reply.UpVoters, reply.DownVoters = ups, downs
		if err := uc.zepRepo.UpdateReply(reply); err != nil {
			return nil, err
		}
		return &VoteResult{Op: op, Score: domain.Score(ups, downs)}, nil
	}
	return nil, errors.New("unknown vote target")
}

// AcceptReply 發問者採納回覆，回覆作者會收到通知
func (uc *ZepChatUseCase) AcceptReply(ctx context.Context, zepChatID, replyID uint, userID string) error {
	z, err := uc.zepRepo.GetByID(zepChatID)
	if err != nil {
		return errors.New("zep chat not found")
	}
	if z.AuthorID != userID {
		return errors.New("only the author can accept a reply")
	}

	reply, err := uc.zepRepo.GetReply(replyID)
	if err != nil || reply.ZepChatID != zepChatID {
		return errors.New("reply not found")
	}

	z.AcceptedReplyID = &replyID
	if err := uc.zepRepo.Update(z); err != nil {
		return err
	}

	if reply.AuthorID != userID {
		uc.notify(ctx, domain.Notification{
			RecipientID: reply.AuthorID,
			EventType:   domain.EventZepChatAccept,
			ActorID:     userID,
			Content:     z.Title,
			RefID:       strconv.FormatUint(uint64(zepChatID), 10),
		})
	}
	return nil
}

func (uc *ZepChatUseCase) notify(ctx context.Context, n domain.Notification) {
	n.Category = domain.Categorize(n.EventType)
	n.CreatedAt = time.Now()
	if err := uc.notifRepo.Create(&n); err != nil {
		logger.Log.Errorf("create notification failed: ", err)
		return
	}
	if err := uc.publisher.PushToUser(ctx, n.RecipientID, n); err != nil {
		logger.Log.Errorf("push notification failed: ", err)
	}
}
