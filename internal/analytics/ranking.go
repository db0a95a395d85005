package analytics

import (
	"sort"

	"vtuber-dash/internal/domain"
)

// SubscriberRanks computes the two independent dense rankings: original and
// rebranded channels are ranked separately, descending by subscriber count,
// 1-based. Equal subscriber counts break by channel ID ascending.
func SubscriberRanks(channels []domain.Channel) domain.SubscriberRanks {
	var original, rebranded []domain.Channel
	for _, ch := range channels {
		if ch.IsRebranded {
			rebranded = append(rebranded, ch)
		} else {
			original = append(original, ch)
		}
	}

	return domain.SubscriberRanks{
		Original:  rankCohort(original),
		Rebranded: rankCohort(rebranded),
	}
}

func rankCohort(cohort []domain.Channel) map[string]int {
	sorted := make([]domain.Channel, len(cohort))
	copy(sorted, cohort)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Subscribers != sorted[j].Subscribers {
			return sorted[i].Subscribers > sorted[j].Subscribers
		}
		return sorted[i].ChannelID < sorted[j].ChannelID
	})

	ranks := make(map[string]int, len(sorted))
	for i, ch := range sorted {
		ranks[ch.ChannelID] = i + 1
	}
	return ranks
}

// RankFor looks up a channel's rank in the cohort matching its rebrand flag,
// falling back to its position within the current page when no ranking is
// supplied or the channel is unknown to it.
func RankFor(ranks *domain.SubscriberRanks, ch domain.Channel, index, pageOffset int) int {
	if ranks == nil {
		return pageOffset + index + 1
	}
	cohort := ranks.Original
	if ch.IsRebranded {
		cohort = ranks.Rebranded
	}
	if rank, ok := cohort[ch.ChannelID]; ok {
		return rank
	}
	return pageOffset + index + 1
}
