// Package redis connects the BFF to the redis server that backs the session
// token store in multi-instance deployments.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := tokenstore.NewRedis(client, tokenstore.WithPrefix(cfg.KeyPrefix))
//	ready := httpserver.Readiness(log, time.Second, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
//
// Errors are sentinels joined with the go-redis cause, so errors.Is works on both.
package redis
