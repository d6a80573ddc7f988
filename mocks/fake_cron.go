//+build !release

package mocks

import "sync"

type fakeCron struct {
	sync.Mutex
	jobs   map[int]func()
	nextID int
	specs  []string
}

func (c *fakeCron) AddFunc(spec string, cmd func()) (int, error) {
	c.Lock()
	defer c.Unlock()

	c.nextID++
	c.jobs[c.nextID] = cmd
	c.specs = append(c.specs, spec)
	return c.nextID, nil
}

func (c *fakeCron) RemoveFunc(id int) {
	c.Lock()
	defer c.Unlock()

	delete(c.jobs, id)
}

// Fire invokes every registered job once.
func (c *fakeCron) Fire() {
	c.Lock()
	jobs := make([]func(), 0, len(c.jobs))
	for _, v := range c.jobs {
		jobs = append(jobs, v)
	}
	c.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Jobs returns number of registered jobs.
func (c *fakeCron) Jobs() int {
	c.Lock()
	defer c.Unlock()

	return len(c.jobs)
}

// Specs returns all received schedules.
func (c *fakeCron) Specs() []string {
	c.Lock()
	defer c.Unlock()

	return c.specs
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *fakeCron {
	return &fakeCron{
		jobs: make(map[int]func()),
	}
}

func (c *fakeCron) Stop() {
}
