// Package sms delivers alert messages through the outbound SMS channel.
package sms

import (
	"context"
	"log/slog"

	bloodconfig "bloodbridge/config"
	"bloodbridge/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

// snsService implements service.SMSService on AWS SNS.
type snsService struct {
	client   *sns.Client
	smsType  string
	senderID string
	logger   *slog.Logger
}

// NewSNSService creates an SNS-backed SMS service. Credentials come from
// the default AWS chain; only the region is taken from config.
func NewSNSService(ctx context.Context, cfg *bloodconfig.SNSConfig, logger *slog.Logger) (service.SMSService, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	smsType := cfg.SMSType
	if smsType == "" {
		// Transactional gets delivery priority over promotional traffic.
		smsType = "Transactional"
	}

	return &snsService{
		client:   sns.NewFromConfig(awsCfg),
		smsType:  smsType,
		senderID: cfg.SenderID,
		logger:   logger,
	}, nil
}

// SendSMS publishes one message directly to an E.164 phone number.
func (s *snsService) SendSMS(ctx context.Context, phoneNumber, message string) error {
	attributes := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String(s.smsType),
		},
	}
	if s.senderID != "" {
		attributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phoneNumber),
		Message:           aws.String(message),
		MessageAttributes: attributes,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish SMS")
	}

	s.logger.Debug("[SNS] SMS published",
		slog.String("message_id", aws.ToString(out.MessageId)),
	)

	return nil
}

// logSMSService logs messages instead of sending them. It stands in for
// SNS in development and in environments without AWS credentials.
type logSMSService struct {
	logger *slog.Logger
}

// NewLogSMSService creates an SMS service that only logs.
func NewLogSMSService(logger *slog.Logger) service.SMSService {
	return &logSMSService{logger: logger}
}

// SendSMS logs the message and reports success.
func (s *logSMSService) SendSMS(_ context.Context, phoneNumber, message string) error {
	s.logger.Info("[LogSMS] outbound message",
		slog.String("to", phoneNumber),
		slog.String("message", message),
	)

	return nil
}
