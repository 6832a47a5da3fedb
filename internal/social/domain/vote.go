package domain

import "hash/fnv"

// VoteKind 投票方向
type VoteKind string

const (
	// VoteUp up vote
	VoteUp VoteKind = "upVote"
	// VoteDown down vote
	VoteDown VoteKind = "downVote"
)

// 投票後實際發生的操作
const (
	// OpUpVote 新增 up vote
	OpUpVote = "upVote"
	// OpDownVote 新增 down vote
	OpDownVote = "downVote"
	// OpRemoveUpVote 收回 up vote
	OpRemoveUpVote = "removeUpVote"
	// OpRemoveDownVote 收回 down vote
	OpRemoveDownVote = "removeDownVote"
)

// VoterFor 由 member id 導出 voter id
// 同一個人永遠是同一個 id，收回再投也不會跟別人撞號
func VoterFor(userID string) Voter {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return Voter{UserID: userID, ID: uint(h.Sum32())}
}

func removeVoter(list VoterList, userID string) VoterList {
	out := make(VoterList, 0, len(list))
	for _, v := range list {
		if v.UserID != userID {
			out = append(out, v)
		}
	}
	return out
}

// ApplyVote 以 server 端狀態為準計算投票結果
// 同方向再投一次是收回，反方向投票會先收回原本的票
// 回傳新的兩個名單與實際執行的操作，一位投票者永遠最多出現在一個名單
func ApplyVote(ups, downs VoterList, voter Voter, kind VoteKind) (VoterList, VoterList, string) {
	switch kind {
	case VoteUp:
		if ups.Contains(voter.UserID) {
			return removeVoter(ups, voter.UserID), downs, OpRemoveUpVote
		}
		return append(removeVoter(ups, voter.UserID), voter), removeVoter(downs, voter.UserID), OpUpVote

	case VoteDown:
		if downs.Contains(voter.UserID) {
			return ups, removeVoter(downs, voter.UserID), OpRemoveDownVote
		}
		return removeVoter(ups, voter.UserID), append(removeVoter(downs, voter.UserID), voter), OpDownVote
	}
	return ups, downs, ""
}
