package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/saulo-duarte/netconv/internal/container"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg := config.Load()

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Erro ao montar o container")
	}
	chiLambda = chiadapter.New(c.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
