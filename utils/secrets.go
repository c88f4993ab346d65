package utils

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// LoadENV pulls environment variables out of an AWS secret and sets them on
// the process. Used to supply database and reporting credentials without a
// local env file.
func LoadENV(secretName string, region string) error {
	secretFile, err := GetSecret(secretName, region)
	if err != nil {
		return err
	}
	secret := make(map[string]interface{})
	if err := json.Unmarshal([]byte(secretFile), &secret); err != nil {
		return err
	}
	for key, value := range secret {
		log.Println("Setting ENV:", key)
		os.Setenv(key, value.(string))
	}
	return nil
}

// GetSecret fetches a secret string from AWS Secrets Manager.
func GetSecret(secretName string, region string) (string, error) {
	svc := secretsmanager.New(session.New(), aws.NewConfig().WithRegion(region))
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}

	if result.SecretString != nil {
		return *result.SecretString, nil
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		return "", err
	}
	return string(decoded[:n]), nil
}
