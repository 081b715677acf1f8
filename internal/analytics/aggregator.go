package analytics

import (
	"fmt"
	"math"
	"sort"

	"prepmate/interview/internal/repositories"
)

// Aggregator computes read-only rollups over finalized answer and session
// records. It never mutates interview state.
type Aggregator struct {
	answers  *repositories.AnswerRepository
	sessions *repositories.SessionRepository
}

func NewAggregator(answers *repositories.AnswerRepository, sessions *repositories.SessionRepository) *Aggregator {
	return &Aggregator{answers: answers, sessions: sessions}
}

// Summary is a user's overall standing: average score across all answers
// (ungraded answers count as zero), total answers, completed sessions.
type Summary struct {
	AvgScore          float64 `json:"avg_score"`
	TotalAnswers      int     `json:"total_answers"`
	CompletedSessions int     `json:"completed_sessions"`
}

// ProgressBucket is one time bucket of a performance trend.
type ProgressBucket struct {
	Period   string  `json:"period"`
	AvgScore float64 `json:"avg_score"`
	Count    int     `json:"count"`
}

type Progress struct {
	Weekly  []ProgressBucket `json:"weekly"`
	Monthly []ProgressBucket `json:"monthly"`
}

// FullReport combines every rollup in one response.
type FullReport struct {
	Summary      Summary                       `json:"summary"`
	Topics       []repositories.GroupedAverage `json:"topics"`
	Difficulties []repositories.GroupedAverage `json:"difficulties"`
	Progress     Progress                      `json:"progress"`
}

func (a *Aggregator) Summary(userID uint) (*Summary, error) {
	answers, err := a.answers.ListByUserChronological(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if len(answers) == 0 {
		return summary, nil
	}

	total := 0
	for _, answer := range answers {
		if answer.Score != nil {
			total += *answer.Score
		}
	}
	summary.AvgScore = round2(float64(total) / float64(len(answers)))
	summary.TotalAnswers = len(answers)

	completed, err := a.sessions.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	summary.CompletedSessions = int(completed)

	return summary, nil
}

func (a *Aggregator) Topics(userID uint) ([]repositories.GroupedAverage, error) {
	return a.answers.AverageByTopic(userID)
}

func (a *Aggregator) Difficulties(userID uint) ([]repositories.GroupedAverage, error) {
	return a.answers.AverageByDifficulty(userID)
}

// Progress buckets the user's answers by ISO week and by calendar month.
// Bucket averages cover graded answers only; counts cover all answers.
func (a *Aggregator) Progress(userID uint) (*Progress, error) {
	answers, err := a.answers.ListByUserChronological(userID)
	if err != nil {
		return nil, err
	}

	weekly := make(map[string]*bucketAccumulator)
	monthly := make(map[string]*bucketAccumulator)

	for _, answer := range answers {
		year, week := answer.CreatedAt.ISOWeek()
		accumulate(weekly, fmt.Sprintf("%04d-W%02d", year, week), answer.Score)
		accumulate(monthly, answer.CreatedAt.Format("2006-01"), answer.Score)
	}

	return &Progress{
		Weekly:  flatten(weekly),
		Monthly: flatten(monthly),
	}, nil
}

func (a *Aggregator) Full(userID uint) (*FullReport, error) {
	summary, err := a.Summary(userID)
	if err != nil {
		return nil, err
	}
	topics, err := a.Topics(userID)
	if err != nil {
		return nil, err
	}
	difficulties, err := a.Difficulties(userID)
	if err != nil {
		return nil, err
	}
	progress, err := a.Progress(userID)
	if err != nil {
		return nil, err
	}

	return &FullReport{
		Summary:      *summary,
		Topics:       topics,
		Difficulties: difficulties,
		Progress:     *progress,
	}, nil
}

type bucketAccumulator struct {
	total  int
	graded int
	count  int
}

func accumulate(buckets map[string]*bucketAccumulator, key string, score *int) {
	acc, ok := buckets[key]
	if !ok {
		acc = &bucketAccumulator{}
		buckets[key] = acc
	}
	acc.count++
	if score != nil {
		acc.total += *score
		acc.graded++
	}
}

func flatten(buckets map[string]*bucketAccumulator) []ProgressBucket {
	out := make([]ProgressBucket, 0, len(buckets))
	for key, acc := range buckets {
		bucket := ProgressBucket{Period: key, Count: acc.count}
		if acc.graded > 0 {
			bucket.AvgScore = round2(float64(acc.total) / float64(acc.graded))
		}
		out = append(out, bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
