package intervals

// Types below cover the fields this server actually reads or writes. The
// upstream returns many more; unknown fields are ignored on unmarshal.

type Athlete struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	Sex        string  `json:"sex,omitempty"`
	City       string  `json:"city,omitempty"`
	Country    string  `json:"country,omitempty"`
	Timezone   string  `json:"timezone,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	ICUResting int     `json:"icu_resting_hr,omitempty"`
}

type Activity struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	StartDateLocal   string   `json:"start_date_local"`
	MovingTime       int      `json:"moving_time,omitempty"`
	ElapsedTime      int      `json:"elapsed_time,omitempty"`
	Distance         float64  `json:"distance,omitempty"`
	TotalElevation   float64  `json:"total_elevation_gain,omitempty"`
	AverageSpeed     float64  `json:"average_speed,omitempty"`
	AverageWatts     *int     `json:"icu_average_watts,omitempty"`
	NormalizedWatts  *int     `json:"icu_weighted_avg_watts,omitempty"`
	AverageHeartRate *int     `json:"average_heartrate,omitempty"`
	MaxHeartRate     *int     `json:"max_heartrate,omitempty"`
	AverageCadence   *float64 `json:"average_cadence,omitempty"`
	TrainingLoad     *int     `json:"icu_training_load,omitempty"`
	Intensity        *float64 `json:"icu_intensity,omitempty"`
	FTP              *int     `json:"icu_ftp,omitempty"`
	Calories         *int     `json:"calories,omitempty"`
	Description      string   `json:"description,omitempty"`
	Trainer          bool     `json:"trainer,omitempty"`
}

type ActivityInterval struct {
	Type            string  `json:"type,omitempty"`
	Label           string  `json:"label,omitempty"`
	StartIndex      int     `json:"start_index,omitempty"`
	EndIndex        int     `json:"end_index,omitempty"`
	MovingTime      int     `json:"moving_time,omitempty"`
	Distance        float64 `json:"distance,omitempty"`
	AverageWatts    *int    `json:"average_watts,omitempty"`
	MaxWatts        *int    `json:"max_watts,omitempty"`
	AverageHeartRate *int   `json:"average_heartrate,omitempty"`
	Intensity       *float64 `json:"intensity,omitempty"`
	Zone            *int    `json:"zone,omitempty"`
}

// ActivityIntervals is the /activity/{id}/intervals payload.
type ActivityIntervals struct {
	ID           string             `json:"id"`
	Analyzed     bool               `json:"analyzed,omitempty"`
	ICUIntervals []ActivityInterval `json:"icu_intervals,omitempty"`
}

type Wellness struct {
	ID          string   `json:"id"` // date, YYYY-MM-DD
	CTL         *float64 `json:"ctl,omitempty"`
	ATL         *float64 `json:"atl,omitempty"`
	RampRate    *float64 `json:"rampRate,omitempty"`
	Form        *float64 `json:"form,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	RestingHR   *int     `json:"restingHR,omitempty"`
	HRV         *float64 `json:"hrv,omitempty"`
	SleepSecs   *int     `json:"sleepSecs,omitempty"`
	SleepScore  *float64 `json:"sleepScore,omitempty"`
	SleepQuality *int    `json:"sleepQuality,omitempty"`
	Fatigue     *int     `json:"fatigue,omitempty"`
	Soreness    *int     `json:"soreness,omitempty"`
	Stress      *int     `json:"stress,omitempty"`
	Mood        *int     `json:"mood,omitempty"`
	Motivation  *int     `json:"motivation,omitempty"`
	Comments    string   `json:"comments,omitempty"`
}

type Event struct {
	ID              int     `json:"id"`
	StartDateLocal  string  `json:"start_date_local"`
	EndDateLocal    string  `json:"end_date_local,omitempty"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Type            string  `json:"type,omitempty"`
	Description     string  `json:"description,omitempty"`
	MovingTime      int     `json:"moving_time,omitempty"`
	Distance        float64 `json:"distance,omitempty"`
	ICUTrainingLoad int     `json:"icu_training_load,omitempty"`
	Indoor          bool    `json:"indoor,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

type SportSettings struct {
	ID            int      `json:"id"`
	Types         []string `json:"types,omitempty"`
	FTP           *int     `json:"ftp,omitempty"`
	FTHR          *int     `json:"fthr,omitempty"`
	MaxHR         *int     `json:"max_hr,omitempty"`
	PaceThreshold *float64 `json:"threshold_pace,omitempty"`
	SwimThreshold *float64 `json:"swim_threshold,omitempty"`
	WarmupTime    *int     `json:"warmup_time,omitempty"`
	CooldownTime  *int     `json:"cooldown_time,omitempty"`
}

type Gear struct {
	ID           string  `json:"id"`
	Type         string  `json:"type,omitempty"`
	Name         string  `json:"name"`
	Distance     float64 `json:"distance,omitempty"`
	MovingTime   int     `json:"moving_time,omitempty"`
	Activities   int     `json:"activities,omitempty"`
	Retired      bool    `json:"retired,omitempty"`
	PurchaseDate string  `json:"purchase_date,omitempty"`
}

// PowerCurve holds best-effort points of a mean-max curve for one period.
type PowerCurve struct {
	Type    string    `json:"type,omitempty"`
	Secs    []int     `json:"secs,omitempty"`
	Values  []float64 `json:"values,omitempty"`
	Oldest  string    `json:"oldest,omitempty"`
	Newest  string    `json:"newest,omitempty"`
}
