package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

const sharedCallTimeout = 5 * time.Second

// sharedDo 合并同 key 的并发调用；共享逻辑运行在脱离调用方取消的 ctx 上，
// 每个调用方只受自己的 ctx 约束
func sharedDo(ctx context.Context, g *singleflight.Group, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ch := g.DoChan(key, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()
		return fn(shared)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
