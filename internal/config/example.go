package config

// ExampleTOML is a complete starter configuration. The bracket tables are
// the 2021 Québec and federal schedules; treat them as sample data, not tax
// advice.
const ExampleTOML = `# firesim configuration
# Growth rates are annual factors: 1.02 means 2% per year.

salary = 75_000
cost_of_living = 20_000
retirement_cost_of_living = 25_000

# Optional starting balances (default 0).
rrsp_contribution_headroom = 0
rrsp_assets = 0
tfsa_assets = 0
unregistered_assets = 0

inflation = 1.02
salary_growth = 1.05
return_on_investment = 1.08

# Fraction of salary matched by the employer into the RRSP (default 0).
employer_rrsp_match = 0.02

# salary_cap = 999999
# withdraw_rate = 0.04
# periods_per_year = 1
# tfsa_limit = 6000
# rrsp_limit = 26500

[[provincial_tax_brackets]]
lower_bound = 0
upper_bound = 15_728
rate = 0.0

[[provincial_tax_brackets]]
lower_bound = 15_728
upper_bound = 45_105
rate = 15.0

[[provincial_tax_brackets]]
lower_bound = 45_105
upper_bound = 90_200
rate = 20.0

[[provincial_tax_brackets]]
lower_bound = 90_200
upper_bound = 109_755
rate = 24.0

[[provincial_tax_brackets]]
lower_bound = 109_755
upper_bound = 999_999
rate = 25.75

[[federal_tax_brackets]]
lower_bound = 0
upper_bound = 13_808
rate = 0.0

[[federal_tax_brackets]]
lower_bound = 13_808
upper_bound = 49_020
rate = 15.0

[[federal_tax_brackets]]
lower_bound = 49_020
upper_bound = 98_040
rate = 20.5

[[federal_tax_brackets]]
lower_bound = 98_040
upper_bound = 151_978
rate = 26.0

[[federal_tax_brackets]]
lower_bound = 151_978
upper_bound = 216_511
rate = 29.75

[[federal_tax_brackets]]
lower_bound = 216_511
upper_bound = 999_999
rate = 33.0
`
