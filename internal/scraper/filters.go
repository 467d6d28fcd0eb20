package scraper

import (
	"net/url"
)

// searchFilters are the high level note search filters: every tradeable
// status, both loan terms, and the full rate, credit score and markup
// ranges.
func searchFilters() url.Values {
	return url.Values{
		"mode":             {"search"},
		"search_from_rate": {"0.04"},
		"search_to_rate":   {"0.29"},
		"fil_search_term":  {"term_36", "term_60"},
		"search_loan_term": {"term_36", "term_60"},
		"opr_min":          {"0.00"},
		"opr_max":          {"Any"},
		"loan_status": {
			"loan_status_issued",
			"loan_status_late_16_30",
			"loan_status_current",
			"loan_status_late_31_120",
			"loan_status_ingrace",
		},
		"remp_min":           {"1"},
		"remp_max":           {"60"},
		"askp_min":           {"0.00"},
		"askp_max":           {"Any"},
		"credit_score_min":   {"600"},
		"credit_score_max":   {"850"},
		"ytm_min":            {"0"},
		"ytm_max":            {"Any"},
		"credit_score_trend": {"UP", "DOWN", "FLAT"},
		"markup_dis_min":     {"-100"},
		"markup_dis_max":     {"100"},
		"ona_min":            {"25"},
		"ona_max":            {"Any"},
	}
}
