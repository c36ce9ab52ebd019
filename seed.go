package camdash

// this file holds the demonstration dataset written on first run, so a fresh
// store shows a believable book of accounts instead of an empty dashboard.

func seedCAMs() []CAM {
	return []CAM{
		{ID: "cam-1", Name: "Sarah Johnson", Email: "sarah.j@example.com"},
		{ID: "cam-2", Name: "Mike Chen", Email: "mike.c@example.com"},
		{ID: "cam-3", Name: "Emily Rodriguez", Email: "emily.r@example.com"},
	}
}

func seedDecision(id, date string, category DecisionCategory, title, description, rationale, expected string) Decision {
	return Decision{
		ID:              id,
		Date:            MustParseDate(date),
		Category:        category,
		Title:           title,
		Description:     description,
		Rationale:       rationale,
		ExpectedOutcome: expected,
	}
}

func seedScore(score int, date string, payment, communication, risk, trend int) HealthScore {
	return HealthScore{
		Score: score,
		Date:  MustParseDate(date),
		Factors: HealthFactors{
			PaymentBehavior:      payment,
			CommunicationQuality: communication,
			RiskLevel:            risk,
			TrendDirection:       trend,
		},
	}
}

func seedAccounts() []Account {
	return []Account{
		{
			ID:       "acc-1",
			Name:     "Sunrise Healthcare Group",
			IsParent: true,
			Facilities: []Facility{
				{ID: "fac-1-1", Name: "Sunrise Medical Center", ARBalance: USD(125000), DaysPastDue: 45},
				{ID: "fac-1-2", Name: "Sunrise Nursing Home", ARBalance: USD(87000), DaysPastDue: 62},
				{ID: "fac-1-3", Name: "Sunrise Rehab Center", ARBalance: USD(43000), DaysPastDue: 30},
			},
			ARBalance:   USD(255000),
			DaysPastDue: 45,
			CreditLimit: USD(300000),
			Status:      StatusActive,
			RiskLevel:   RiskHigh,
			CAMOwner:    "Sarah Johnson",
			StaticContext: StaticContext{
				Background:        "Large healthcare system with 3 facilities. Acquired by private equity in 2023. New CFO started Q4 2024. Historically reliable payer but experiencing cash flow issues post-acquisition.",
				PaymentPatterns:   "Was paying weekly until Aug 2024. Now sporadic payments averaging $15K/month. Tends to pay when AR exceeds $250K. Last 3 payments were partial.",
				RelationshipNotes: "Primary contact is CFO Janet Williams. She is responsive but under pressure from PE owners. Best contacted Tuesday-Thursday.",
				KeyContacts:       "Janet Williams (CFO) - janet.w@sunrisehealthcare.example\nTom Martinez (AP Manager) - tom.m@sunrisehealthcare.example",
			},
			Decisions: []Decision{
				seedDecision("dec-1-1", "2024-12-09", CategoryRiskUrgency,
					"Elevated to High Risk",
					"Moving from Medium to High risk due to deteriorating payment pattern and PE pressure.",
					"Three consecutive months of partial payments. AR has grown 40% since September.",
					"Increased payment monitoring and weekly check-ins"),
				seedDecision("dec-1-2", "2024-12-02", CategoryActionPlan,
					"Weekly payment cadence proposal",
					"Proposed a fixed weekly payment schedule to the CFO to stabilize cash collection.",
					"Sporadic payments make forecasting impossible; a cadence rebuilds trust on both sides.",
					"Signed payment schedule by mid-December"),
			},
			HealthScores: []HealthScore{
				seedScore(45, "2024-12-09", 30, 60, 35, 55),
				seedScore(55, "2024-12-02", 45, 65, 45, 65),
				seedScore(62, "2024-11-25", 55, 70, 55, 68),
			},
		},
		{
			ID:          "acc-2",
			Name:        "Meadowbrook Senior Living",
			IsParent:    false,
			ARBalance:   USD(42000),
			DaysPastDue: 15,
			CreditLimit: USD(75000),
			Status:      StatusActive,
			RiskLevel:   RiskLow,
			CAMOwner:    "Mike Chen",
			StaticContext: StaticContext{
				Background:        "Single-site senior living community, family owned. Customer for six years with a clean history.",
				PaymentPatterns:   "Pays net-30 like clockwork; the current 15 DPD is a one-off from an AP system migration.",
				RelationshipNotes: "Office manager Dana Lee handles everything and answers the same day.",
				KeyContacts:       "Dana Lee (Office Manager) - dana.l@meadowbrook.example",
			},
			Decisions: []Decision{
				seedDecision("dec-2-1", "2024-12-06", CategoryStatus,
					"Confirmed low risk after AP migration",
					"Verified the delayed invoices were released after their AP system cutover.",
					"Six-year spotless history; the delay has a confirmed one-off cause.",
					"Back to current within two weeks"),
			},
			HealthScores: []HealthScore{
				seedScore(88, "2024-12-09", 90, 85, 90, 87),
			},
		},
		{
			ID:       "acc-3",
			Name:     "Metro Hospital Network",
			IsParent: true,
			Facilities: []Facility{
				{ID: "fac-3-1", Name: "Metro General Hospital", ARBalance: USD(340000), DaysPastDue: 90},
				{ID: "fac-3-2", Name: "Metro Urgent Care East", ARBalance: USD(78000), DaysPastDue: 75},
				{ID: "fac-3-3", Name: "Metro Urgent Care West", ARBalance: USD(65000), DaysPastDue: 60},
				{ID: "fac-3-4", Name: "Metro Specialty Clinic", ARBalance: USD(92000), DaysPastDue: 85},
			},
			ARBalance:   USD(575000),
			DaysPastDue: 90,
			CreditLimit: USD(500000),
			Status:      StatusCollections,
			RiskLevel:   RiskCritical,
			CAMOwner:    "Sarah Johnson",
			StaticContext: StaticContext{
				Background:        "Four-facility hospital network in severe financial distress; bankruptcy rumors since November.",
				PaymentPatterns:   "No payments received in 90 days. Previously paid monthly. All four facilities stopped at once.",
				RelationshipNotes: "CFO unreachable since mid-November. Only the AP clerk responds, with no authority.",
				KeyContacts:       "Priya Nair (AP Clerk) - priya.n@metrohospital.example",
			},
			Decisions: []Decision{
				seedDecision("dec-3-1", "2024-12-08", CategoryStatus,
					"Moved to collections",
					"Escalated the whole network to the collections process after 90 days of silence.",
					"No payment and no executive contact for a quarter; exposure exceeds the credit limit.",
					"Engage collections agency within one week"),
				seedDecision("dec-3-2", "2024-11-28", CategoryRiskUrgency,
					"Critical risk classification",
					"Raised to critical following bankruptcy rumors and total payment stoppage.",
					"Simultaneous stoppage across all facilities points to a central liquidity event.",
					"Daily monitoring of any incoming payment"),
			},
			HealthScores: []HealthScore{
				seedScore(15, "2024-12-09", 5, 20, 10, 25),
				seedScore(22, "2024-12-02", 10, 25, 15, 38),
				seedScore(35, "2024-11-25", 20, 40, 25, 55),
			},
		},
		{
			ID:       "acc-4",
			Name:     "Valley Care Associates",
			IsParent: true,
			Facilities: []Facility{
				{ID: "fac-4-1", Name: "Valley Medical Plaza", ARBalance: USD(28000), DaysPastDue: 22},
				{ID: "fac-4-2", Name: "Valley Home Health", ARBalance: USD(15000), DaysPastDue: 18},
			},
			ARBalance:   USD(43000),
			DaysPastDue: 22,
			CreditLimit: USD(100000),
			Status:      StatusPaymentPlan,
			RiskLevel:   RiskMedium,
			CAMOwner:    "Emily Rodriguez",
			StaticContext: StaticContext{
				Background:        "Two-site outpatient group recovering from a billing dispute settled in October.",
				PaymentPatterns:   "On a 12-week payment plan since November, current on every installment so far.",
				RelationshipNotes: "Controller Sam Ortiz is cooperative and proactively flags any upcoming shortfall.",
				KeyContacts:       "Sam Ortiz (Controller) - sam.o@valleycare.example",
			},
			Decisions: []Decision{
				seedDecision("dec-4-1", "2024-12-05", CategorySpecialArrangement,
					"Payment plan checkpoint",
					"Reviewed installment four of twelve; received in full and on time.",
					"Plan adherence is the agreed condition for keeping service levels unchanged.",
					"Full plan completion by end of February"),
			},
			HealthScores: []HealthScore{
				seedScore(72, "2024-12-09", 75, 90, 65, 58),
				seedScore(68, "2024-12-02", 70, 88, 60, 54),
			},
		},
	}
}
