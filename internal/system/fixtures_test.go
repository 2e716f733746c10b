package system

import (
	"context"

	"github.com/specialistvlad/compgrid/internal/component"
)

// Shared test components modelled as a tiny application: a global init
// counter, a config, a counter service and an app on top.

type initCounter struct{ cnt int }

func newInitCounter(context.Context, component.Deps) (any, error) {
	return &initCounter{cnt: -1}, nil
}

func (c *initCounter) incr() int {
	c.cnt++
	return c.cnt
}

func (c *initCounter) Open(context.Context) (any, error) {
	c.cnt = 0
	return c, nil
}

func (c *initCounter) Close(context.Context) error {
	c.cnt = -1
	return nil
}

type config struct {
	counter *initCounter
	bar     *int
	incr    int
	when    int
}

func newConfig(_ context.Context, deps component.Deps) (any, error) {
	counter, err := component.Get[*initCounter](deps, "init_counter")
	if err != nil {
		return nil, err
	}
	return &config{counter: counter}, nil
}

func (c *config) Open(context.Context) (any, error) {
	bar := 1
	c.bar = &bar
	c.incr = 10
	c.when = c.counter.incr()
	return c, nil
}

func (c *config) Close(context.Context) error {
	c.bar = nil
	c.incr = 0
	return nil
}

type counter struct {
	cfg     *config
	counter *initCounter
	value   *int
	when    int
}

func newCounter(_ context.Context, deps component.Deps) (any, error) {
	cfg, err := component.Get[*config](deps, "config")
	if err != nil {
		return nil, err
	}
	ic, err := component.Get[*initCounter](deps, "counter")
	if err != nil {
		return nil, err
	}
	return &counter{cfg: cfg, counter: ic}, nil
}

func (c *counter) increment() { *c.value += c.cfg.incr }

func (c *counter) Open(context.Context) (any, error) {
	v := *c.cfg.bar
	c.value = &v
	c.when = c.counter.incr()
	return c, nil
}

func (c *counter) Close(context.Context) error {
	c.value = nil
	return nil
}

type app struct {
	cfg         *config
	counter     *counter
	initCounter *initCounter
	when        int
}

func newApp(_ context.Context, deps component.Deps) (any, error) {
	cfg, err := component.Get[*config](deps, "cfg")
	if err != nil {
		return nil, err
	}
	cnt, err := component.Get[*counter](deps, "counter")
	if err != nil {
		return nil, err
	}
	ic, err := component.Get[*initCounter](deps, "init_counter")
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, counter: cnt, initCounter: ic}, nil
}

func (a *app) getCounter() *int { return a.counter.value }
func (a *app) incrCounter()     { a.counter.increment() }

func (a *app) Open(context.Context) (any, error) {
	a.when = a.initCounter.incr()
	return a, nil
}

func (a *app) Close(context.Context) error { return nil }

// appTable mirrors a typical registration: mixed plain and aliased
// dependency declarations, declared out of dependency order.
func appTable() *component.Table {
	tbl := component.NewTable()
	mustAdd(tbl, component.Spec{Name: "app", Factory: newApp, Dependencies: component.DependsOn("counter", "cfg", "init_counter")})
	mustAdd(tbl, component.Spec{Name: "init_counter", Factory: newInitCounter})
	mustAdd(tbl, component.Spec{Name: "cfg", Factory: newConfig, Dependencies: component.DependsOn("init_counter")})
	mustAdd(tbl, component.Spec{Name: "counter", Factory: newCounter, Dependencies: component.Aliased(map[string]string{
		"cfg":          "config",
		"init_counter": "counter",
	})})
	return tbl
}

func mustAdd(tbl *component.Table, spec component.Spec) {
	if err := tbl.Add(spec); err != nil {
		panic(err)
	}
}
