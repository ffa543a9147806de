// Command catgraph serves the cat and user GraphQL API.
//
// @title                       catgraph API
// @version                     1.0
// @description                 GraphQL API over cats stored in MongoDB and users held by the auth service.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT issued by the auth service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "catgraph:", err)
		os.Exit(1)
	}
}
