package bdd

import (
	"context"
	"fmt"

	"gamer_social_service/internal/social/domain"

	"github.com/cucumber/godog"
)

// 好友排序與通知分類的 step，直接跑 domain 的排序和分組邏輯
func registerSocialSteps(s *godog.ScenarioContext) {
	s.Step(`^"([^"]*)" 的好友列表有 "([^"]*)"$`, friendListHas)
	s.Step(`^"([^"]*)" 傳來訊息 "([^"]*)" 於 (\d+)$`, friendSentMessageAt)
	s.Step(`^好友列表第 (\d+) 位應該是 "([^"]*)"$`, friendAtPositionShouldBe)

	s.Step(`^收到一則 "([^"]*)" 事件的通知$`, receivedNotificationOfType)
	s.Step(`^"([^"]*)" 分類應該有 (\d+) 則通知$`, categoryShouldHaveCount)

	s.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		friendEntries = nil
		notifications = nil
		return ctx, nil
	})
}

var friendEntries []domain.FriendEntry
var notifications []domain.Notification

func friendListHas(owner, friendID string) error {
	friendEntries = append(friendEntries, domain.FriendEntry{MemberID: friendID})
	return nil
}

func friendSentMessageAt(friendID, content string, timestamp int) error {
	for i := range friendEntries {
		if friendEntries[i].MemberID == friendID {
			friendEntries[i].LastMessage = &domain.LastMessage{
				Content:   content,
				Timestamp: int64(timestamp),
			}
			return nil
		}
	}
	return fmt.Errorf("friend %s not in list", friendID)
}

func friendAtPositionShouldBe(position int, friendID string) error {
	domain.SortByRecency(friendEntries)
	idx := position - 1
	if idx < 0 || idx >= len(friendEntries) {
		return fmt.Errorf("position %d out of range", position)
	}
	if friendEntries[idx].MemberID != friendID {
		return fmt.Errorf("expected %s at position %d, but got %s", friendID, position, friendEntries[idx].MemberID)
	}
	return nil
}

func receivedNotificationOfType(eventType string) error {
	notifications = append(notifications, domain.Notification{
		EventType: eventType,
		Category:  domain.Categorize(eventType),
	})
	return nil
}

func categoryShouldHaveCount(category string, count int) error {
	out := domain.Partition(notifications)
	list, ok := out[domain.NotificationCategory(category)]
	if !ok {
		return fmt.Errorf("category %s missing from partition", category)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d notifications in %s, but got %d", count, category, len(list))
	}
	return nil
}
