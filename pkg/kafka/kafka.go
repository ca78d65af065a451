package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	ActivityTopic      = "bookfriend.activity"
	StatsConsumerGroup = "bookfriend-stats"
)

type Config struct {
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE" default:"false"`
}

type EventType string

const (
	EventFriendRequested EventType = "friend_requested"
	EventFriendAccepted  EventType = "friend_accepted"
	EventFriendDeclined  EventType = "friend_declined"
	EventFriendRemoved   EventType = "friend_removed"
	EventBookRequested   EventType = "book_requested"
	EventBookLent        EventType = "book_lent"
	EventBookDeclined    EventType = "book_declined"
	EventBookReturned    EventType = "book_returned"
	EventBookRated       EventType = "book_rated"
	EventBookReviewed    EventType = "book_reviewed"
	EventMessageSent     EventType = "message_sent"
)

func (t EventType) Valid() bool {
	switch t {
	case EventFriendRequested, EventFriendAccepted, EventFriendDeclined, EventFriendRemoved,
		EventBookRequested, EventBookLent, EventBookDeclined, EventBookReturned,
		EventBookRated, EventBookReviewed, EventMessageSent:
		return true
	}
	return false
}

// Event is an activity record emitted after a committed state change.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	ActorID   int64     `json:"actorId"`
	Actor     string    `json:"actor"`
	TargetID  int64     `json:"targetId"`
	EntityID  int64     `json:"entityId"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// CreateTopics makes sure the activity topic exists.
func CreateTopics(cfg Config) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopic(ActivityTopic, &sarama.TopicDetail{
		NumPartitions:     3,
		ReplicationFactor: 1,
	}, false)
	var topicErr *sarama.TopicError
	if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
		return nil
	}
	return err
}

// Consume runs the consumer group session loop until ctx is done.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("consumer group", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
