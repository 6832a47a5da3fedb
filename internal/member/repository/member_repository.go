package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"gamer_social_service/internal/member/domain"
)

// MemberRepository definition get Member info
type MemberRepository interface {
	CreateUser(ctx context.Context, member *domain.Member) error
	UpdateMemberStatus(ctx context.Context, member *domain.Member) error
	UpdateProfile(ctx context.Context, member *domain.Member) error
	FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error)
	SearchMembers(ctx context.Context, keyword string, limit int) ([]domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
}

type memberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository create a MemberRepository
func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = "id, member_id, user_name, display_name, email, password, profile_picture, account_type, status"

func (r *memberRepository) CreateUser(ctx context.Context, member *domain.Member) error {
	// profile_picture 與 status 也一起寫入，FindByMember 是掃非指標欄位，不能留 NULL
	_, err := r.db.Exec(ctx,
		"INSERT INTO member(member_id, user_name, display_name, email, password, profile_picture, account_type, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		member.MemberID, member.UserName, member.DisplayName, member.Email, member.Password, member.ProfilePicture, member.AccountType, member.Status)
	return err
}

func (r *memberRepository) UpdateMemberStatus(ctx context.Context, member *domain.Member) error {
	_, err := r.db.Exec(ctx, "UPDATE member SET status = $1 WHERE member_id = $2", member.Status, member.MemberID)
	return err
}

// UpdateProfile 更新顯示名稱與頭像
func (r *memberRepository) UpdateProfile(ctx context.Context, member *domain.Member) error {
	_, err := r.db.Exec(ctx,
		"UPDATE member SET display_name = $1, profile_picture = $2 WHERE member_id = $3",
		member.DisplayName, member.ProfilePicture, member.MemberID)
	return err
}

func (r *memberRepository) FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	queryStr := "SELECT " + memberColumns + " FROM member WHERE 1=1"
	params := []interface{}{}
	paramCount := 1

	if memberQuery.Email != nil {
		queryStr += fmt.Sprintf(" AND email = $%d", paramCount)
		params = append(params, *memberQuery.Email)
		paramCount++
	}
	if memberQuery.UserName != nil {
		queryStr += fmt.Sprintf(" AND user_name = $%d", paramCount)
		params = append(params, *memberQuery.UserName)
		paramCount++
	}
	if memberQuery.MemberID != nil {
		queryStr += fmt.Sprintf(" AND member_id = $%d", paramCount)
		params = append(params, *memberQuery.MemberID)
		paramCount++
	}
	if memberQuery.ID != nil {
		queryStr += fmt.Sprintf(" AND id = $%d", paramCount)
		params = append(params, *memberQuery.ID)
		paramCount++
	}

	row := r.db.QueryRow(ctx, queryStr, params...)
	var member domain.Member
	err := row.Scan(&member.ID, &member.MemberID, &member.UserName, &member.DisplayName,
		&member.Email, &member.Password, &member.ProfilePicture, &member.AccountType, &member.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("no member found with given criteria")
		}
		return nil, err
	}

	return &member, nil
}

// SearchMembers 以關鍵字模糊搜尋 user_name 與 display_name，排除已刪除帳號
func (r *memberRepository) SearchMembers(ctx context.Context, keyword string, limit int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 20
	}
	queryStr := "SELECT " + memberColumns + ` FROM member
		WHERE (user_name ILIKE $1 OR display_name ILIKE $1) AND status != $2
		ORDER BY user_name LIMIT $3`
	rows, err := r.db.Query(ctx, queryStr, "%"+keyword+"%", domain.MemberStatusDelete, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

// ListMembers 後台分頁列出所有成員
func (r *memberRepository) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 50
	}
	queryStr := "SELECT " + memberColumns + " FROM member ORDER BY id LIMIT $1 OFFSET $2"
	rows, err := r.db.Query(ctx, queryStr, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(&member.ID, &member.MemberID, &member.UserName, &member.DisplayName,
			&member.Email, &member.Password, &member.ProfilePicture, &member.AccountType, &member.Status); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
