// Package evaluator dispatches placement.Worker.Run across a bounded
// goroutine pool, one job per unevaluated genetic.Individual, using
// channel-fed jobs, one shared buffered result channel, and a cancel signal for
// cooperative shutdown. It covers a single concern: no priority queues,
// no rate limiter, no connection pool.
package evaluator
