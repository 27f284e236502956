// Package dixaclient provides the main entry point for creating Dixa API clients.
//
// The simplest way to get a client is with an API key:
//
//	client, err := dixaclient.NewWithAPIKey("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	conversation, err := client.Conversations().Get(ctx, "42")
//
// For more control, build a dixa.Config and pass it to New:
//
//	client, err := dixaclient.New(&dixa.Config{
//		APIKey:   "your-api-key",
//		RetryMax: 5,
//		Debug:    true,
//		Logger:   myLogger,
//	})
package dixaclient
