package export

// FrameworkDeck returns the fixed ten-slide content of the Selenium
// automation framework deck. Positions and sizes are in inches, converted
// to EMU; every string is a literal.
func FrameworkDeck() DeckContent {
	return DeckContent{
		Title:  "Selenium Automation Framework",
		Author: "Automation Framework Demo",
		Slides: []SlideContent{
			// Slide 1: Cover
			{
				Title:    "Selenium Automation Framework",
				Subtitle: "Java 17 • TestNG • Smart Actions • AI Auto‑Healing (Optional)",
				Footer:   "Automation Assignment • Framework Demo",
				Cover:    "cover",
			},
			// Slide 2: What it delivers
			{
				Title:    "What this framework delivers",
				Subtitle: "Maintainability • Stability • Resilience",
				Footer:   "Slide 2/10",
				Cards: []MetricCard{
					{Heading: "Stability", Value: "Explicit waits", Accent: colorCyan,
						Box: Rect{inch(0.9), inch(2.2), inch(3.9), inch(1.2)}},
					{Heading: "Maintainability", Value: "POM + annotations", Accent: colorPurple,
						Box: Rect{inch(0.9), inch(3.55), inch(3.9), inch(1.2)}},
					{Heading: "Resilience", Value: "AI healing + audit", Accent: colorGreen,
						Box: Rect{inch(0.9), inch(4.9), inch(3.9), inch(1.2)}},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Low setup with Selenium Manager",
							"Centralized waits + smart actions",
							"Safety: redaction, cache, validation",
						},
						Box:      Rect{inch(0.9), inch(6.2), inch(6.2), inch(0.7)},
						FontSize: 16,
					},
				},
				Images: []ImagePlacement{
					{Asset: "architecture", Box: Rect{inch(7.1), inch(2.2), inch(5.5), inch(3.4375)}},
				},
			},
			// Slide 3: Problem statement
			{
				Title:    "The problem we solve",
				Subtitle: "UI changes cause fragile selectors and maintenance cost",
				Footer:   "Slide 3/10",
				Boxes: []FlowBox{
					{ID: "ui-changes", Lines: []string{"UI Changes"}, Accent: colorAmber,
						Box: Rect{inch(1.0), inch(2.7), inch(2.6), inch(0.9)}},
					{ID: "broken-selectors", Lines: []string{"Broken Selectors"}, Accent: colorPurple,
						Box: Rect{inch(4.0), inch(2.7), inch(2.6), inch(0.9)}},
					{ID: "test-failures", Lines: []string{"Test Failures"}, Accent: colorCyan,
						Box: Rect{inch(7.0), inch(2.7), inch(2.6), inch(0.9)}},
					{ID: "maintenance-cost", Lines: []string{"Maintenance Cost"}, Accent: colorGreen,
						Box: Rect{inch(10.0), inch(2.7), inch(2.6), inch(0.9)}},
				},
				Arrows: []Arrow{
					{From: "ui-changes", To: "broken-selectors", FromEdge: EdgeRight, ToEdge: EdgeLeft},
					{From: "broken-selectors", To: "test-failures", FromEdge: EdgeRight, ToEdge: EdgeLeft},
					{From: "test-failures", To: "maintenance-cost", FromEdge: EdgeRight, ToEdge: EdgeLeft},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Flaky runs due to timing and dynamic DOM",
							"Selector churn during UI releases",
							"Boilerplate waits and locators repeated across tests",
							"Limited traceability on what changed and why",
						},
						Box:      Rect{inch(1.0), inch(4.3), inch(11.6), inch(2.6)},
						FontSize: 18,
					},
				},
			},
			// Slide 4: Architecture
			{
				Title:    "Architecture overview",
				Subtitle: "Layered design with clear responsibilities",
				Footer:   "Slide 4/10",
				Images: []ImagePlacement{
					{Asset: "architecture", Box: Rect{inch(0.9), inch(2.2), inch(6.1), inch(3.8125)}},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Tests (TestNG): call page actions",
							"Pages: business actions + @SeleniumSelector",
							"Core: waits + smart actions + element wiring",
							"AI (optional): healing with audit log",
							"Utilities: JSON + HTML cleaning",
						},
						Box:      Rect{inch(7.3), inch(2.3), inch(5.1), inch(4.8)},
						FontSize: 18,
					},
				},
			},
			// Slide 5: Core building blocks
			{
				Title:    "Core implementation",
				Subtitle: "How the framework works under the hood",
				Footer:   "Slide 5/10",
				Boxes: []FlowBox{
					{ID: "factory", Lines: []string{"SeleniumFactory", "(WebDriver lifecycle)"}, Accent: colorCyan,
						Box: Rect{inch(1.0), inch(2.4), inch(3.7), inch(1.0)}},
					{ID: "base-page", Lines: []string{"BasePage", "(waits + smart actions)"}, Accent: colorPurple,
						Box: Rect{inch(1.0), inch(3.8), inch(3.7), inch(1.0)}},
					{ID: "initializer", Lines: []string{"ElementInitializer", "(reflection wiring)"}, Accent: colorGreen,
						Box: Rect{inch(5.2), inch(2.4), inch(3.7), inch(1.0)}},
					{ID: "smart-element", Lines: []string{"SmartElement", "(By + driver)"}, Accent: colorAmber,
						Box: Rect{inch(5.2), inch(3.8), inch(3.7), inch(1.0)}},
				},
				Arrows: []Arrow{
					{From: "factory", To: "initializer", FromEdge: EdgeRight, ToEdge: EdgeLeft},
					{From: "base-page", To: "smart-element", FromEdge: EdgeRight, ToEdge: EdgeLeft},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Explicit waits (10s default)",
							"CSS selectors by default",
							"XPath via prefix: xpath=...",
							"Minimal boilerplate in tests",
						},
						Box:      Rect{inch(9.3), inch(2.4), inch(3.9), inch(4.2)},
						FontSize: 18,
					},
				},
			},
			// Slide 6: Smart actions
			{
				Title:    "Smart Actions",
				Subtitle: "Stable by default; healing only on failure",
				Footer:   "Slide 6/10",
				Bullets: []BulletBlock{
					{
						Items: []string{
							"smartClick(selector): wait → click",
							"smartFill(selector, value): wait → clear → type",
							"On TimeoutException → healing attempt (1 retry)",
							"StaleElementReferenceException → retry once (no AI)",
						},
						Box:      Rect{inch(0.9), inch(2.2), inch(6.3), inch(4.8)},
						FontSize: 20,
					},
				},
				Boxes: []FlowBox{
					{ID: "step-parse", Lines: []string{"Parse selector → By"}, Accent: colorCyan,
						Box: Rect{inch(7.4), inch(2.3), inch(5.2), inch(0.75)}},
					{ID: "step-wait", Lines: []string{"Explicit wait (visibility/clickable)"}, Accent: colorPurple,
						Box: Rect{inch(7.4), inch(3.2), inch(5.2), inch(0.75)}},
					{ID: "step-act", Lines: []string{"Perform action (click/type)"}, Accent: colorGreen,
						Box: Rect{inch(7.4), inch(4.1), inch(5.2), inch(0.75)}},
					{ID: "step-heal", Lines: []string{"If timeout → AI heal → validate → retry once"}, Accent: colorAmber,
						Box: Rect{inch(7.4), inch(5.0), inch(5.2), inch(0.75)}},
				},
				Arrows: []Arrow{
					{From: "step-parse", To: "step-wait", FromEdge: EdgeBottom, ToEdge: EdgeTop},
					{From: "step-wait", To: "step-act", FromEdge: EdgeBottom, ToEdge: EdgeTop},
					{From: "step-act", To: "step-heal", FromEdge: EdgeBottom, ToEdge: EdgeTop},
				},
			},
			// Slide 7: AI healing pipeline
			{
				Title:    "AI Healing pipeline",
				Subtitle: "Optional • audited • designed with safety guardrails",
				Footer:   "Slide 7/10",
				Images: []ImagePlacement{
					{Asset: "ai-healing", Box: Rect{inch(0.9), inch(2.2), inch(6.2), inch(3.875)}},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Trigger: action times out (TimeoutException)",
							"Capture HTML via getPageSource()",
							"Clean + redact sensitive values (best-effort)",
							"Ask LLM for replacement selector (if configured)",
							"Validate healed selector → retry once",
							"Audit log: logs/ai-healing-audit.log",
						},
						Box:      Rect{inch(7.4), inch(2.3), inch(5.2), inch(4.9)},
						FontSize: 18,
					},
				},
			},
			// Slide 8: Hardening: cache + validation
			{
				Title:    "AI hardening (real projects)",
				Subtitle: "Redaction • Healing cache • Selector validation",
				Footer:   "Slide 8/10",
				Boxes: []FlowBox{
					{ID: "cache-lookup", Lines: []string{"Cache lookup", "healing-cache.json"}, Accent: colorGreen,
						Box: Rect{inch(1.0), inch(2.5), inch(3.6), inch(0.9)}},
					{ID: "validate", Lines: []string{"Validate selector", "(unique + actionable)"}, Accent: colorCyan,
						Box: Rect{inch(5.0), inch(2.5), inch(3.6), inch(0.9)}},
					{ID: "retry", Lines: []string{"Retry once", "(or bypass cache)"}, Accent: colorAmber,
						Box: Rect{inch(9.0), inch(2.5), inch(3.6), inch(0.9)}},
				},
				Arrows: []Arrow{
					{From: "cache-lookup", To: "validate", FromEdge: EdgeRight, ToEdge: EdgeLeft},
					{From: "validate", To: "retry", FromEdge: EdgeRight, ToEdge: EdgeLeft},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Cache reduces repeated LLM calls and speeds up healing",
							"Validation prevents wrong/stale selectors from hiding real issues",
							"If cached selector is invalid: bypass cache once and request fresh heal",
							"Override cache path: mvn test -Dhealing.cache.path=...json",
						},
						Box:      Rect{inch(1.0), inch(3.8), inch(11.6), inch(3.0)},
						FontSize: 18,
					},
				},
			},
			// Slide 9: Demo story
			{
				Title:    "Demo story",
				Subtitle: "Login test flow + evidence artifacts",
				Footer:   "Slide 9/10",
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Test creates driver via SeleniumFactory",
							"LoginPage exposes clear actions (enterUsername, enterPassword, clickLogin)",
							"Smart actions add stability and optional healing on failures",
							"Evidence: ai-healing-audit.log + healing-cache.json",
						},
						Box:      Rect{inch(0.9), inch(2.2), inch(7.0), inch(4.8)},
						FontSize: 20,
					},
				},
				Boxes: []FlowBox{
					{ID: "run", Lines: []string{"Run: mvn test"}, Accent: colorPurple,
						Box: Rect{inch(8.2), inch(2.6), inch(4.4), inch(0.85)}},
					{ID: "audit", Lines: []string{"Audit: logs/ai-healing-audit.log"}, Accent: colorAmber,
						Box: Rect{inch(8.2), inch(3.7), inch(4.4), inch(0.85)}},
					{ID: "cache", Lines: []string{"Cache: healing-cache.json"}, Accent: colorGreen,
						Box: Rect{inch(8.2), inch(4.8), inch(4.4), inch(0.85)}},
				},
			},
			// Slide 10: Summary / Why
			{
				Title:    "Why this framework",
				Subtitle: "Clean • Reliable • Explainable • Resilient",
				Footer:   "Slide 10/10",
				Cards: []MetricCard{
					{Heading: "Clarity", Value: "Page Object Model", Accent: colorPurple,
						Box: Rect{inch(0.9), inch(2.3), inch(4.0), inch(1.3)}},
					{Heading: "Reliability", Value: "Explicit waits", Accent: colorCyan,
						Box: Rect{inch(0.9), inch(3.75), inch(4.0), inch(1.3)}},
					{Heading: "Resilience", Value: "AI healing (optional)", Accent: colorGreen,
						Box: Rect{inch(0.9), inch(5.2), inch(4.0), inch(1.3)}},
				},
				Bullets: []BulletBlock{
					{
						Items: []string{
							"Designed to reduce flakiness and locator maintenance",
							"AI hardening: redaction + cache + validation guardrails",
							"Audit trail provides traceability for assignments and real teams",
							"Future scope: ThreadLocal drivers, reporting, screenshots",
						},
						Box:      Rect{inch(5.3), inch(2.3), inch(7.0), inch(4.6)},
						FontSize: 20,
					},
				},
				Boxes: []FlowBox{
					{ID: "thanks", Lines: []string{"Thank you — Questions?"}, Accent: colorAmber,
						Box: Rect{inch(5.3), inch(6.3), inch(7.0), inch(0.75)}},
				},
			},
		},
	}
}
