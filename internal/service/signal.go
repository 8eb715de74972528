package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/drives-academy/academy-api/internal/domain"
)

const resultsChannel = "academy:quiz-results"

// SignalService fans quiz results out to realtime listeners via redis pub/sub.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) PublishResult(ctx context.Context, res domain.QuizResult) error {

	jsonstr, err := json.Marshal(res)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, resultsChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Realtime streams published results to output until ctx is cancelled.
// input narrows the stream to a set of quiz ids; an empty set means all.
func (s *SignalService) Realtime(ctx context.Context, input <-chan []int64, output chan<- domain.QuizResult) {
	pubsub := s.rdb.Subscribe(ctx, resultsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	var filter map[int64]bool

	for {
		select {
		case <-ctx.Done():
			return
		case ids, ok := <-input:
			if !ok {
				return
			}
			if len(ids) == 0 {
				filter = nil
				continue
			}
			filter = make(map[int64]bool, len(ids))
			for _, id := range ids {
				filter[id] = true
			}
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var res domain.QuizResult
			if err := json.Unmarshal([]byte(msg.Payload), &res); err != nil {
				continue
			}
			if filter != nil && !filter[res.QuizID] {
				continue
			}
			select {
			case output <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
