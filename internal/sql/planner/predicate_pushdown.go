package planner

// applyPredicatePushdown rewrites plan so that every predicate stored on
// a ScanPlan moves into an explicit FilterPlan directly above that scan,
// clearing Conds (and FedConds, for consistency) off the scan. It
// recurses through JoinPlans only; join conditions stay on their
// JoinPlan.
func applyPredicatePushdown(plan PlanNode) PlanNode {
	switch p := plan.(type) {
	case *JoinPlan:
		p.Left = applyPredicatePushdown(p.Left)
		p.Right = applyPredicatePushdown(p.Right)
		return p

	case *ScanPlan:
		if len(p.Conds) == 0 {
			return p
		}
		conds := p.Conds
		p.Conds = nil
		p.FedConds = nil
		return &FilterPlan{Child: p, Conds: conds}

	default:
		return plan
	}
}
