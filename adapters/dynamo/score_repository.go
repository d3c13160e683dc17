package dynamo

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillsummary/domain/scoring"
	"skillsummary/internal/errors"
	"skillsummary/ports"
)

// QueryAPI is the slice of the DynamoDB client the score store uses.
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ScoreRepositoryImpl implements ScoreStore against a DynamoDB table keyed by
// (video_call_session_id, end_time).
type ScoreRepositoryImpl struct {
	client QueryAPI
	table  string
}

// NewScoreRepository creates a new DynamoDB score store reading the given table
func NewScoreRepository(client QueryAPI, table string) ports.ScoreStore {
	return &ScoreRepositoryImpl{client: client, table: table}
}

// QueryScores returns the session's raw score records inside the window,
// newest end_time first.
func (r *ScoreRepositoryImpl) QueryScores(ctx context.Context, sessionID int64, window scoring.Window) ([]scoring.Record, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("video_call_session_id = :sid AND end_time BETWEEN :lo AND :hi"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberN{Value: strconv.FormatInt(sessionID, 10)},
			":lo":  &types.AttributeValueMemberS{Value: window.LowerBound()},
			":hi":  &types.AttributeValueMemberS{Value: window.UpperBound()},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var records []scoring.Record
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, errors.KVQuery(err, "score query failed for session "+strconv.FormatInt(sessionID, 10))
		}
		for _, item := range out.Items {
			records = append(records, toRecord(item))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return records, nil
}

// toRecord converts a store item to the domain's tagged-value record. Only
// number and string members carry scores upstream; other member types are
// skipped rather than guessed at.
func toRecord(item map[string]types.AttributeValue) scoring.Record {
	record := make(scoring.Record, len(item))
	for name, attr := range item {
		switch v := attr.(type) {
		case *types.AttributeValueMemberN:
			record[name] = scoring.NumberValue(v.Value)
		case *types.AttributeValueMemberS:
			record[name] = scoring.StringValue(v.Value)
		}
	}
	return record
}
