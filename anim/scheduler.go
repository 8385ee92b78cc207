// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"container/heap"
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
)

// burstLo and burstHi bound the eased progress window in which a
// morph job fires its one-shot decorative burst.
const (
	burstLo = 0.3
	burstHi = 0.7
)

// jobItem is the scheduler-internal state of one live job.
type jobItem struct {
	job   Job
	seq   uint64
	start time.Duration
	last  float32
	burst bool
}

// progress returns raw progress at the given time, clamped to
// [0, 1] and never decreasing over the life of the job.
func (it *jobItem) progress(now time.Duration) float32 {
	p := float32(float64(now-it.start) / float64(it.job.Duration))
	p = math32.Clamp(p, 0, 1)
	if p < it.last {
		return it.last
	}
	it.last = p
	return p
}

// jobQueue is a heap of queued jobs: highest priority first, with
// Schedule order breaking ties.
type jobQueue []*jobItem

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	if q[i].job.Priority != q[j].job.Priority {
		return q[i].job.Priority > q[j].job.Priority
	}
	return q[i].seq < q[j].seq
}

func (q jobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *jobQueue) Push(x any) { *q = append(*q, x.(*jobItem)) }

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}

// Scheduler runs animation jobs on a single engine clock. Queued
// jobs activate in priority order as active slots free up, active
// jobs update on every [Scheduler.Tick] in activation order, and
// finished jobs leave the active set right after their final
// update. A Scheduler is not safe for concurrent use: drive it from
// the frame loop.
type Scheduler struct {

	// Visuals resolves visual ids for move and morph jobs. A nil
	// source, or a source returning nil for an id, skips the
	// visual-mutating part of the update while the job still
	// advances and completes on schedule.
	Visuals VisualSource

	// Burst, if non-nil, is called once per morph job as eased
	// progress enters the middle of the transition, with the
	// target's current position.
	Burst func(pos math32.Vector3)

	// MaxConcurrent caps the number of simultaneously active jobs.
	MaxConcurrent int

	queue  jobQueue
	active ordmap.Map[string, *jobItem]
	seq    uint64
}

// NewScheduler returns a scheduler that runs at most maxConcurrent
// jobs at a time, resolving visual ids through the given source.
func NewScheduler(maxConcurrent int, visuals VisualSource) *Scheduler {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Scheduler{Visuals: visuals, MaxConcurrent: maxConcurrent}
}

// Schedule validates the job and adds it to the queue. The job does
// not start until a [Scheduler.Tick] finds a free active slot for
// it. Jobs with an empty or duplicate live ID, a non-positive
// duration, or a malformed payload are rejected.
func (sc *Scheduler) Schedule(jb Job) error {
	if err := jb.validate(); err != nil {
		return errors.Log(err)
	}
	if sc.live(jb.ID) {
		return errors.Log(fmt.Errorf("anim.Schedule: job ID %q is already live", jb.ID))
	}
	it := &jobItem{job: jb, seq: sc.seq}
	sc.seq++
	heap.Push(&sc.queue, it)
	return nil
}

// live reports whether id names a queued or active job.
func (sc *Scheduler) live(id string) bool {
	if _, ok := sc.active.ValueByKeyTry(id); ok {
		return true
	}
	for _, it := range sc.queue {
		if it.job.ID == id {
			return true
		}
	}
	return false
}

// Active returns the number of active jobs.
func (sc *Scheduler) Active() int { return sc.active.Len() }

// Queued returns the number of queued jobs.
func (sc *Scheduler) Queued() int { return len(sc.queue) }

// Tick advances all animations to the given engine time, which must
// not decrease across calls. It first activates queued jobs while
// active slots are free, then updates every active job, and finally
// completes the jobs whose raw progress reached 1, each one right
// after its own update.
func (sc *Scheduler) Tick(now time.Duration) {
	for sc.active.Len() < sc.MaxConcurrent && len(sc.queue) > 0 {
		it := heap.Pop(&sc.queue).(*jobItem)
		it.start = now
		sc.active.Add(it.job.ID, it)
	}
	for _, id := range sc.active.Keys() {
		it, ok := sc.active.ValueByKeyTry(id)
		if !ok { // cancelled by an earlier callback in this tick
			continue
		}
		p := it.progress(now)
		sc.update(it, p)
		if p >= 1 {
			sc.active.DeleteKey(id)
			sc.finish(it)
		}
	}
}

// update applies one tick of the job's payload at raw progress p.
func (sc *Scheduler) update(it *jobItem, p float32) {
	ep := it.job.Ease.Ease(p)
	switch a := it.job.Anim.(type) {
	case Move:
		if vis := sc.visual(a.Target); vis != nil {
			vis.SetPos(a.Trajectory.Pos(a.From, a.To, ep))
			if a.Trajectory == TrajectoryArc {
				yaw := math32.Sin(ep*math32.Pi) * arcYawMax
				vis.SetQuat(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), yaw))
			}
		}
	case Morph:
		sc.morph(it, a, ep)
	case Particle:
		a.System.Update(ParticleStep)
	case CameraMove:
		a.Camera.SetView(a.EyeFrom.Lerp(a.EyeTo, ep), a.LookFrom.Lerp(a.LookTo, ep))
	}
	if it.job.OnUpdate != nil {
		it.job.OnUpdate(p)
	}
}

// morph interpolates scale and emissive intensity between the two
// evolution stages, firing the one-shot burst mid-transition.
func (sc *Scheduler) morph(it *jobItem, a Morph, ep float32) {
	vis := sc.visual(a.Target)
	if vis == nil {
		return
	}
	scale := math32.Lerp(a.From.Scale(), a.To.Scale(), ep)
	vis.SetScale(math32.Vec3(scale, scale, scale))
	if em, ok := vis.(Emissive); ok {
		em.SetEmissive(math32.Lerp(a.From.Emissive(), a.To.Emissive(), ep))
	}
	if !it.burst && ep > burstLo && ep < burstHi {
		it.burst = true
		if sc.Burst != nil {
			sc.Burst(vis.Pos())
		}
	}
}

// visual resolves a visual id, returning nil for stale handles.
func (sc *Scheduler) visual(id string) Visual {
	if sc.Visuals == nil {
		return nil
	}
	return sc.Visuals(id)
}

// finish disposes owned resources and fires the completion
// callback. The job must already be out of the queue and the active
// set.
func (sc *Scheduler) finish(it *jobItem) {
	sc.disposeOwned(it)
	if it.job.OnComplete != nil {
		it.job.OnComplete()
	}
}

// disposeOwned releases resources owned by a job leaving the
// scheduler.
func (sc *Scheduler) disposeOwned(it *jobItem) {
	if a, ok := it.job.Anim.(Particle); ok {
		a.System.Dispose()
	}
}

// Cancel removes the job with the given ID, whether queued or
// active, without invoking its callbacks. A particle job's owned
// system is still disposed. Cancel reports whether a job was
// removed.
func (sc *Scheduler) Cancel(id string) bool {
	if it, ok := sc.active.ValueByKeyTry(id); ok {
		sc.active.DeleteKey(id)
		sc.disposeOwned(it)
		return true
	}
	for i, it := range sc.queue {
		if it.job.ID == id {
			heap.Remove(&sc.queue, i)
			sc.disposeOwned(it)
			return true
		}
	}
	return false
}

// CancelAll force-finishes every live job: active jobs complete in
// activation order, then queued jobs complete in priority order
// without ever starting. Every job gets its OnComplete callback,
// with no further interpolation. Jobs scheduled by those callbacks
// land in the emptied queue and survive.
func (sc *Scheduler) CancelAll() {
	done := make([]*jobItem, 0, sc.active.Len()+len(sc.queue))
	for _, kv := range sc.active.Order {
		done = append(done, kv.Value)
	}
	sc.active.Reset()
	for len(sc.queue) > 0 {
		done = append(done, heap.Pop(&sc.queue).(*jobItem))
	}
	for _, it := range done {
		sc.finish(it)
	}
	if len(done) > 0 {
		logx.PrintlnDebug("anim.CancelAll: force-finished", len(done), "jobs")
	}
}
