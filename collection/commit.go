package collection

import "github.com/katalvlaran/hydronet/fluid"

// Commit pushes the operating point at massFlow to every member: each member
// carries massFlow with its own pressure change.
func (s *Series) Commit(massFlow float64) error {
	return commitSeries(s.items, massFlow)
}

// Commit solves the common pressure change for massFlow and pushes each
// branch's own flow at that pressure.
func (p *Parallel) Commit(massFlow float64) error {
	dp, err := p.PressureChange(massFlow)
	if err != nil {
		return err
	}
	return commitParallel(p.items, dp)
}

// Commit distributes massFlow according to the arrangement.
func (s *Super) Commit(massFlow float64) error {
	if s.arrangement == ArrangementSeries {
		return commitSeries(s.items, massFlow)
	}
	dp, err := s.PressureChange(massFlow)
	if err != nil {
		return err
	}
	return commitParallel(s.items, dp)
}

func commitSeries[T fluid.Component](members []T, massFlow float64) error {
	for _, m := range members {
		dp, err := m.PressureChange(massFlow)
		if err != nil {
			return err
		}
		if err = commitMember(m, massFlow, dp); err != nil {
			return err
		}
	}
	return nil
}

func commitParallel[T fluid.Component](members []T, pressureChange float64) error {
	for _, m := range members {
		q, err := m.MassFlowFromPressureChange(pressureChange)
		if err != nil {
			return err
		}
		if err = commitMember(m, q, pressureChange); err != nil {
			return err
		}
	}
	return nil
}

// commitMember recurses into nested collections and records the point on
// stateful components. Stateless members are skipped.
func commitMember(m fluid.Component, massFlow, pressureChange float64) error {
	switch c := m.(type) {
	case Collection:
		return c.Commit(massFlow)
	case fluid.Committer:
		return c.Commit(massFlow, pressureChange)
	}
	return nil
}
