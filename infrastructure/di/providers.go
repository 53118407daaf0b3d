package di

import (
	"context"
	"fmt"

	"goaltracker-backend/application/ports"
	"goaltracker-backend/application/services"
	"goaltracker-backend/infrastructure/config"
	"goaltracker-backend/infrastructure/messaging/eventbridge"
	"goaltracker-backend/infrastructure/persistence/abstractions"
	dynamostore "goaltracker-backend/infrastructure/persistence/dynamodb"
	"goaltracker-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       abstractions.ItemStore
	UserRepo    ports.UserRepository
	EventBus    ports.EventBus
	Metrics     *observability.Metrics
	UserService *services.UserService
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client, or nil when metrics
// are not configured.
func ProvideCloudWatchClient(awsCfg aws.Config, cfg *config.Config) *awscloudwatch.Client {
	if cfg.MetricsNamespace == "" {
		return nil
	}
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideItemStore creates the single-table item store
func ProvideItemStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) abstractions.ItemStore {
	return dynamostore.NewStore(client, cfg.DynamoDBTable, logger)
}

// ProvideUserRepository creates the user repository
func ProvideUserRepository(store abstractions.ItemStore, cfg *config.Config, logger *zap.Logger) ports.UserRepository {
	return dynamostore.NewUserRepository(store, cfg.EmailIndexName, logger)
}

// ProvideEventBus creates the domain event publisher
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := cfg.MetricsNamespace
	if namespace != "" {
		namespace = fmt.Sprintf("%s/%s", namespace, cfg.Environment)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(
	userRepo ports.UserRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.UserService {
	return services.NewUserService(userRepo, eventBus, metrics, logger)
}
