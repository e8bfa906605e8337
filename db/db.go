package db

import (
	"strconv"

	"github.com/mwhitman/tonality/constants"
	"github.com/mwhitman/tonality/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDbEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

func PutExportRecord(rec model.ExportRecord) {
	item := map[string]*dynamodb.AttributeValue{
		"PK":       {S: aws.String(rec.Filename)},
		"Tempo":    {N: aws.String(strconv.FormatUint(uint64(rec.Tempo), 10))},
		"NumNotes": {N: aws.String(strconv.FormatUint(uint64(rec.NumNotes), 10))},
	}

	client := newClient()
	_, err := client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.ExportTable),
		Item:      item,
	})
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

func GetExportRecords(filenames []string) map[string]model.ExportRecord {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.ExportRecord)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	client := newClient()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.ExportTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[constants.ExportTable] {
		var rec model.ExportRecord
		rec.Filename = *v["PK"].S
		if v["Tempo"].N != nil {
			tempo, _ := strconv.ParseUint(*v["Tempo"].N, 10, 32)
			rec.Tempo = uint(tempo)
		}
		if v["NumNotes"].N != nil {
			num, _ := strconv.ParseUint(*v["NumNotes"].N, 10, 32)
			rec.NumNotes = uint(num)
		}
		res[rec.Filename] = rec
	}

	return res
}
