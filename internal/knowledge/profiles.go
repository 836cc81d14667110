package knowledge

import "github.com/disease-risk-server/internal/domain"

// defaultProfiles is the static disease knowledge base: hand-authored symptom
// weights (not learned parameters) with a bias term per disease. Slice order is
// the canonical insertion order exposed by Base.Diseases and used for
// tie-breaking; do not reorder entries.
var defaultProfiles = []domain.DiseaseProfile{
	{
		Key:  "diabetes",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "increased_thirst", Weight: 0.85},
			{Key: "frequent_urination", Weight: 0.9},
			{Key: "extreme_hunger", Weight: 0.75},
			{Key: "unexplained_weight_loss", Weight: 0.8},
			{Key: "fatigue", Weight: 0.6},
			{Key: "blurred_vision", Weight: 0.7},
			{Key: "slow_healing_sores", Weight: 0.65},
			{Key: "frequent_infections", Weight: 0.6},
			{Key: "tingling_hands_feet", Weight: 0.7},
			{Key: "darkened_skin", Weight: 0.55},
		},
	},
	{
		Key:  "hypertension",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "severe_headache", Weight: 0.75},
			{Key: "chest_pain", Weight: 0.85},
			{Key: "difficulty_breathing", Weight: 0.8},
			{Key: "irregular_heartbeat", Weight: 0.9},
			{Key: "blood_in_urine", Weight: 0.7},
			{Key: "pounding_sensation", Weight: 0.65},
			{Key: "vision_problems", Weight: 0.6},
			{Key: "fatigue", Weight: 0.5},
			{Key: "dizziness", Weight: 0.7},
			{Key: "nosebleeds", Weight: 0.55},
		},
	},
	{
		Key:  "covid19",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.8},
			{Key: "dry_cough", Weight: 0.85},
			{Key: "fatigue", Weight: 0.7},
			{Key: "loss_taste_smell", Weight: 0.95},
			{Key: "sore_throat", Weight: 0.6},
			{Key: "headache", Weight: 0.65},
			{Key: "body_aches", Weight: 0.7},
			{Key: "difficulty_breathing", Weight: 0.9},
			{Key: "chest_pain", Weight: 0.75},
			{Key: "confusion", Weight: 0.8},
		},
	},
	{
		Key:  "heart_disease",
		Bias: -2.7,
		Symptoms: []domain.SymptomWeight{
			{Key: "chest_pain", Weight: 0.9},
			{Key: "shortness_breath", Weight: 0.85},
			{Key: "pain_arms_neck", Weight: 0.75},
			{Key: "dizziness", Weight: 0.65},
			{Key: "rapid_heartbeat", Weight: 0.8},
			{Key: "fatigue", Weight: 0.6},
			{Key: "swelling_legs", Weight: 0.7},
			{Key: "cold_sweats", Weight: 0.75},
			{Key: "nausea", Weight: 0.55},
			{Key: "jaw_pain", Weight: 0.7},
		},
	},
	{
		Key:  "influenza",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.85},
			{Key: "chills", Weight: 0.8},
			{Key: "muscle_aches", Weight: 0.85},
			{Key: "cough", Weight: 0.75},
			{Key: "congestion", Weight: 0.7},
			{Key: "runny_nose", Weight: 0.7},
			{Key: "headache", Weight: 0.75},
			{Key: "fatigue", Weight: 0.8},
		},
	},
	{
		Key:  "malaria",
		Bias: -2.2,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.9},
			{Key: "chills", Weight: 0.9},
			{Key: "headache", Weight: 0.75},
			{Key: "nausea", Weight: 0.7},
			{Key: "vomiting", Weight: 0.7},
			{Key: "muscle_pain", Weight: 0.8},
			{Key: "fatigue", Weight: 0.75},
			{Key: "sweating", Weight: 0.85},
		},
	},
	{
		Key:  "diabetes_type_2",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "increased_thirst", Weight: 0.85},
			{Key: "frequent_urination", Weight: 0.9},
			{Key: "hunger", Weight: 0.75},
			{Key: "fatigue", Weight: 0.7},
			{Key: "blurred_vision", Weight: 0.65},
		},
	},
	{
		Key:  "breast_cancer",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "breast_lump", Weight: 0.95},
			{Key: "breast_pain", Weight: 0.7},
			{Key: "nipple_discharge", Weight: 0.8},
			{Key: "skin_changes", Weight: 0.75},
			{Key: "swollen_lymph_nodes", Weight: 0.7},
		},
	},
	{
		Key:  "lung_cancer",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "persistent_cough", Weight: 0.9},
			{Key: "coughing_blood", Weight: 0.95},
			{Key: "chest_pain", Weight: 0.8},
			{Key: "shortness_breath", Weight: 0.85},
			{Key: "weight_loss", Weight: 0.75},
		},
	},
	{
		Key:  "colorectal_cancer",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "change_bowel_habits", Weight: 0.85},
			{Key: "blood_in_stool", Weight: 0.95},
			{Key: "abdominal_pain", Weight: 0.75},
			{Key: "weight_loss", Weight: 0.7},
			{Key: "fatigue", Weight: 0.65},
		},
	},
	{
		Key:  "prostate_cancer",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "difficulty_urinating", Weight: 0.85},
			{Key: "blood_in_urine", Weight: 0.9},
			{Key: "pelvic_pain", Weight: 0.7},
			{Key: "bone_pain", Weight: 0.6},
		},
	},
	{
		Key:  "stroke",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "numbness_face_arm_leg", Weight: 0.95},
			{Key: "confusion", Weight: 0.9},
			{Key: "trouble_speaking", Weight: 0.95},
			{Key: "trouble_seeing", Weight: 0.85},
			{Key: "severe_headache", Weight: 0.8},
			{Key: "dizziness", Weight: 0.75},
		},
	},
	{
		Key:  "pneumonia",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "cough_phlegm", Weight: 0.9},
			{Key: "fever", Weight: 0.85},
			{Key: "chills", Weight: 0.8},
			{Key: "difficulty_breathing", Weight: 0.9},
			{Key: "chest_pain", Weight: 0.85},
			{Key: "fatigue", Weight: 0.75},
		},
	},
	{
		Key:  "tuberculosis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "persistent_cough", Weight: 0.9},
			{Key: "coughing_blood", Weight: 0.95},
			{Key: "chest_pain", Weight: 0.75},
			{Key: "fever", Weight: 0.7},
			{Key: "night_sweats", Weight: 0.85},
			{Key: "weight_loss", Weight: 0.8},
		},
	},
	{
		Key:  "hepatitis_b",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "yellow_skin_eyes", Weight: 0.95},
			{Key: "dark_urine", Weight: 0.85},
			{Key: "fatigue", Weight: 0.8},
			{Key: "nausea", Weight: 0.75},
			{Key: "abdominal_pain", Weight: 0.7},
		},
	},
	{
		Key:  "hepatitis_c",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "yellow_skin_eyes", Weight: 0.9},
			{Key: "dark_urine", Weight: 0.8},
			{Key: "fatigue", Weight: 0.85},
			{Key: "loss_appetite", Weight: 0.75},
			{Key: "nausea", Weight: 0.7},
		},
	},
	{
		Key:  "hiv_aids",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.8},
			{Key: "chills", Weight: 0.75},
			{Key: "rash", Weight: 0.7},
			{Key: "night_sweats", Weight: 0.85},
			{Key: "muscle_aches", Weight: 0.75},
			{Key: "sore_throat", Weight: 0.7},
			{Key: "swollen_lymph_nodes", Weight: 0.9},
		},
	},
	{
		Key:  "alzheimers_disease",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "memory_loss", Weight: 0.95},
			{Key: "difficulty_planning", Weight: 0.85},
			{Key: "confusion_time_place", Weight: 0.9},
			{Key: "misplacing_items", Weight: 0.8},
			{Key: "mood_changes", Weight: 0.75},
		},
	},
	{
		Key:  "parkinsons_disease",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "tremor", Weight: 0.95},
			{Key: "slowed_movement", Weight: 0.9},
			{Key: "rigid_muscles", Weight: 0.85},
			{Key: "impaired_posture", Weight: 0.8},
			{Key: "loss_automatic_movements", Weight: 0.75},
		},
	},
	{
		Key:  "multiple_sclerosis",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "numbness_weakness", Weight: 0.9},
			{Key: "vision_problems", Weight: 0.85},
			{Key: "tingling", Weight: 0.8},
			{Key: "fatigue", Weight: 0.85},
			{Key: "dizziness", Weight: 0.75},
		},
	},
	{
		Key:  "epilepsy",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "seizures", Weight: 0.99},
			{Key: "confusion", Weight: 0.75},
			{Key: "staring_spell", Weight: 0.8},
			{Key: "uncontrollable_jerking", Weight: 0.9},
			{Key: "loss_consciousness", Weight: 0.85},
		},
	},
	{
		Key:  "asthma",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "shortness_breath", Weight: 0.9},
			{Key: "chest_tightness", Weight: 0.85},
			{Key: "wheezing", Weight: 0.95},
			{Key: "coughing_at_night", Weight: 0.8},
		},
	},
	{
		Key:  "copd",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "shortness_breath", Weight: 0.9},
			{Key: "wheezing", Weight: 0.85},
			{Key: "chest_tightness", Weight: 0.8},
			{Key: "chronic_cough", Weight: 0.9},
			{Key: "frequent_infections", Weight: 0.75},
		},
	},
	{
		Key:  "kidney_disease",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fatigue", Weight: 0.8},
			{Key: "swollen_ankles", Weight: 0.85},
			{Key: "poor_appetite", Weight: 0.75},
			{Key: "puffy_eyes", Weight: 0.7},
			{Key: "frequent_urination", Weight: 0.8},
		},
	},
	{
		Key:  "liver_disease",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "yellow_skin_eyes", Weight: 0.95},
			{Key: "abdominal_pain", Weight: 0.8},
			{Key: "swelling_legs", Weight: 0.75},
			{Key: "dark_urine", Weight: 0.85},
			{Key: "chronic_fatigue", Weight: 0.8},
		},
	},
	{
		Key:  "osteoarthritis",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "joint_pain", Weight: 0.9},
			{Key: "stiffness", Weight: 0.85},
			{Key: "tenderness", Weight: 0.8},
			{Key: "loss_flexibility", Weight: 0.75},
			{Key: "grating_sensation", Weight: 0.7},
		},
	},
	{
		Key:  "rheumatoid_arthritis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "tender_joints", Weight: 0.9},
			{Key: "joint_stiffness", Weight: 0.9},
			{Key: "fatigue", Weight: 0.8},
			{Key: "fever", Weight: 0.6},
			{Key: "loss_appetite", Weight: 0.7},
		},
	},
	{
		Key:  "osteoporosis",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "back_pain", Weight: 0.8},
			{Key: "loss_height", Weight: 0.85},
			{Key: "stooped_posture", Weight: 0.8},
			{Key: "bone_fracture", Weight: 0.9},
		},
	},
	{
		Key:  "migraine",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "severe_headache", Weight: 0.95},
			{Key: "sensitivity_light", Weight: 0.9},
			{Key: "sensitivity_sound", Weight: 0.85},
			{Key: "nausea", Weight: 0.8},
			{Key: "vomiting", Weight: 0.75},
		},
	},
	{
		Key:  "depression",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "persistent_sadness", Weight: 0.95},
			{Key: "loss_interest", Weight: 0.9},
			{Key: "sleep_disturbances", Weight: 0.85},
			{Key: "fatigue", Weight: 0.8},
			{Key: "anxiety", Weight: 0.75},
		},
	},
	{
		Key:  "anxiety_disorder",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "nervousness", Weight: 0.9},
			{Key: "panic", Weight: 0.85},
			{Key: "rapid_heartbeat", Weight: 0.8},
			{Key: "trembling", Weight: 0.75},
			{Key: "fatigue", Weight: 0.7},
		},
	},
	{
		Key:  "bipolar_disorder",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "mood_swings", Weight: 0.95},
			{Key: "high_energy", Weight: 0.9},
			{Key: "low_energy", Weight: 0.9},
			{Key: "sleep_problems", Weight: 0.8},
		},
	},
	{
		Key:  "schizophrenia",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "delusions", Weight: 0.95},
			{Key: "hallucinations", Weight: 0.95},
			{Key: "disorganized_speech", Weight: 0.9},
			{Key: "abnormal_behavior", Weight: 0.85},
		},
	},
	{
		Key:  "celiac_disease",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "diarrhea", Weight: 0.9},
			{Key: "fatigue", Weight: 0.85},
			{Key: "weight_loss", Weight: 0.8},
			{Key: "bloating", Weight: 0.85},
			{Key: "abdominal_pain", Weight: 0.8},
		},
	},
	{
		Key:  "crohns_disease",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "diarrhea", Weight: 0.9},
			{Key: "fever", Weight: 0.75},
			{Key: "fatigue", Weight: 0.8},
			{Key: "abdominal_pain", Weight: 0.85},
			{Key: "blood_in_stool", Weight: 0.8},
		},
	},
	{
		Key:  "ulcerative_colitis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "diarrhea_blood", Weight: 0.95},
			{Key: "abdominal_pain", Weight: 0.85},
			{Key: "rectal_pain", Weight: 0.8},
			{Key: "weight_loss", Weight: 0.75},
			{Key: "fatigue", Weight: 0.7},
		},
	},
	{
		Key:  "gout",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "intense_joint_pain", Weight: 0.95},
			{Key: "lingering_discomfort", Weight: 0.8},
			{Key: "inflammation", Weight: 0.85},
			{Key: "limited_range_motion", Weight: 0.75},
		},
	},
	{
		Key:  "psoriasis",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "red_patches_skin", Weight: 0.95},
			{Key: "scaling_spots", Weight: 0.9},
			{Key: "dry_cracked_skin", Weight: 0.8},
			{Key: "itching", Weight: 0.75},
			{Key: "swollen_joints", Weight: 0.7},
		},
	},
	{
		Key:  "lupus",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "fatigue", Weight: 0.9},
			{Key: "joint_pain", Weight: 0.85},
			{Key: "butterfly_rash", Weight: 0.95},
			{Key: "fever", Weight: 0.75},
			{Key: "sensitivity_light", Weight: 0.8},
		},
	},
	{
		Key:  "fibromyalgia",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "widespread_pain", Weight: 0.95},
			{Key: "fatigue", Weight: 0.9},
			{Key: "cognitive_difficulties", Weight: 0.8},
			{Key: "sleep_problems", Weight: 0.85},
		},
	},
	{
		Key:  "iron_deficiency_anemia",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "extreme_fatigue", Weight: 0.9},
			{Key: "weakness", Weight: 0.85},
			{Key: "pale_skin", Weight: 0.8},
			{Key: "chest_pain", Weight: 0.75},
			{Key: "cold_hands_feet", Weight: 0.7},
		},
	},
	{
		Key:  "vitamin_d_deficiency",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fatigue", Weight: 0.8},
			{Key: "bone_pain", Weight: 0.85},
			{Key: "muscle_weakness", Weight: 0.8},
			{Key: "mood_changes", Weight: 0.7},
		},
	},
	{
		Key:  "hypothyroidism",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "fatigue", Weight: 0.9},
			{Key: "increased_sensitivity_cold", Weight: 0.85},
			{Key: "constipation", Weight: 0.8},
			{Key: "dry_skin", Weight: 0.75},
			{Key: "weight_gain", Weight: 0.8},
		},
	},
	{
		Key:  "hyperthyroidism",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "unintentional_weight_loss", Weight: 0.9},
			{Key: "rapid_heartbeat", Weight: 0.85},
			{Key: "increased_appetite", Weight: 0.8},
			{Key: "nervousness", Weight: 0.8},
			{Key: "sweating", Weight: 0.75},
		},
	},
	{
		Key:  "adrenal_insufficiency",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "fatigue", Weight: 0.9},
			{Key: "muscle_weakness", Weight: 0.85},
			{Key: "loss_appetite", Weight: 0.8},
			{Key: "weight_loss", Weight: 0.8},
			{Key: "abdominal_pain", Weight: 0.75},
		},
	},
	{
		Key:  "pituitary_disorders",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "headache", Weight: 0.8},
			{Key: "vision_problems", Weight: 0.85},
			{Key: "fatigue", Weight: 0.8},
			{Key: "mood_changes", Weight: 0.75},
			{Key: "infertility", Weight: 0.7},
		},
	},
	{
		Key:  "glaucoma",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "blind_spots", Weight: 0.9},
			{Key: "tunnel_vision", Weight: 0.85},
			{Key: "severe_headache", Weight: 0.8},
			{Key: "eye_pain", Weight: 0.85},
			{Key: "blurred_vision", Weight: 0.8},
		},
	},
	{
		Key:  "cataracts",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "clouded_vision", Weight: 0.95},
			{Key: "sensitivity_light", Weight: 0.85},
			{Key: "difficulty_seeing_night", Weight: 0.9},
			{Key: "fading_colors", Weight: 0.8},
			{Key: "double_vision", Weight: 0.75},
		},
	},
	{
		Key:  "macular_degeneration",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "partial_vision_loss", Weight: 0.95},
			{Key: "straight_lines_appear_wavy", Weight: 0.9},
			{Key: "blurred_vision", Weight: 0.85},
			{Key: "difficulty_adapting_low_light", Weight: 0.8},
		},
	},
	{
		Key:  "hearing_loss",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "muffling_speech", Weight: 0.9},
			{Key: "difficulty_understanding_words", Weight: 0.85},
			{Key: "trouble_hearing_consonants", Weight: 0.8},
			{Key: "asking_others_speak_slowly", Weight: 0.75},
		},
	},
	{
		Key:  "tinnitus",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "ringing_ears", Weight: 0.95},
			{Key: "buzzing_ears", Weight: 0.9},
			{Key: "roaring_ears", Weight: 0.85},
			{Key: "clicking_ears", Weight: 0.8},
		},
	},
	{
		Key:  "sleep_apnea",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "loud_snoring", Weight: 0.9},
			{Key: "stop_breathing_sleep", Weight: 0.95},
			{Key: "gasping_air_sleep", Weight: 0.9},
			{Key: "morning_headache", Weight: 0.75},
			{Key: "daytime_sleepiness", Weight: 0.85},
		},
	},
	{
		Key:  "insomnia",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "difficulty_falling_asleep", Weight: 0.95},
			{Key: "waking_up_night", Weight: 0.9},
			{Key: "waking_up_early", Weight: 0.85},
			{Key: "daytime_tiredness", Weight: 0.8},
		},
	},
	{
		Key:  "gerd",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "heartburn", Weight: 0.95},
			{Key: "chest_pain", Weight: 0.8},
			{Key: "difficulty_swallowing", Weight: 0.85},
			{Key: "regurgitation", Weight: 0.9},
			{Key: "sensation_lump_throat", Weight: 0.75},
		},
	},
	{
		Key:  "ibs",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "abdominal_pain", Weight: 0.85},
			{Key: "bloating", Weight: 0.8},
			{Key: "gas", Weight: 0.8},
			{Key: "diarrhea", Weight: 0.75},
			{Key: "constipation", Weight: 0.75},
		},
	},
	{
		Key:  "gallstones",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "sudden_intense_pain_abdomen", Weight: 0.95},
			{Key: "back_pain", Weight: 0.8},
			{Key: "nausea", Weight: 0.75},
			{Key: "vomiting", Weight: 0.75},
			{Key: "digestive_problems", Weight: 0.7},
		},
	},
	{
		Key:  "kidney_stones",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "severe_pain_side_back", Weight: 0.95},
			{Key: "pain_urination", Weight: 0.9},
			{Key: "pink_red_brown_urine", Weight: 0.85},
			{Key: "nausea", Weight: 0.8},
			{Key: "frequent_urination", Weight: 0.75},
		},
	},
	{
		Key:  "uti",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "strong_urge_urinate", Weight: 0.9},
			{Key: "burning_sensation_urination", Weight: 0.95},
			{Key: "cloudy_urine", Weight: 0.85},
			{Key: "red_pink_urine", Weight: 0.8},
			{Key: "pelvic_pain", Weight: 0.75},
		},
	},
	{
		Key:  "benign_prostatic_hyperplasia",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "frequent_urination", Weight: 0.9},
			{Key: "trouble_starting_urination", Weight: 0.85},
			{Key: "weak_urine_stream", Weight: 0.85},
			{Key: "dribbling_urination", Weight: 0.8},
		},
	},
	{
		Key:  "endometriosis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "painful_periods", Weight: 0.95},
			{Key: "pain_intercourse", Weight: 0.85},
			{Key: "pain_bowel_movements", Weight: 0.8},
			{Key: "excessive_bleeding", Weight: 0.75},
			{Key: "infertility", Weight: 0.7},
		},
	},
	{
		Key:  "pcos",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "irregular_periods", Weight: 0.95},
			{Key: "excess_androgen", Weight: 0.9},
			{Key: "polycystic_ovaries", Weight: 0.95},
			{Key: "weight_gain", Weight: 0.8},
			{Key: "acne", Weight: 0.75},
		},
	},
	{
		Key:  "preeclampsia",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "high_blood_pressure", Weight: 0.95},
			{Key: "severe_headaches", Weight: 0.9},
			{Key: "changes_vision", Weight: 0.85},
			{Key: "swelling_face_hands", Weight: 0.8},
		},
	},
	{
		Key:  "gestational_diabetes",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "increased_thirst", Weight: 0.85},
			{Key: "frequent_urination", Weight: 0.9},
			{Key: "fatigue", Weight: 0.75},
			{Key: "nausea", Weight: 0.7},
		},
	},
	{
		Key:  "myocardial_infarction",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "chest_pain", Weight: 0.95},
			{Key: "shortness_breath", Weight: 0.9},
			{Key: "cold_sweat", Weight: 0.85},
			{Key: "fatigue", Weight: 0.8},
			{Key: "nausea", Weight: 0.75},
		},
	},
	{
		Key:  "atrial_fibrillation",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "palpitations", Weight: 0.95},
			{Key: "weakness", Weight: 0.85},
			{Key: "fatigue", Weight: 0.85},
			{Key: "lightheadedness", Weight: 0.8},
			{Key: "shortness_breath", Weight: 0.75},
		},
	},
	{
		Key:  "heart_failure",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "shortness_breath", Weight: 0.95},
			{Key: "fatigue", Weight: 0.9},
			{Key: "swollen_legs", Weight: 0.9},
			{Key: "rapid_heartbeat", Weight: 0.85},
			{Key: "persistent_cough", Weight: 0.8},
		},
	},
	{
		Key:  "peripheral_artery_disease",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "leg_pain_walking", Weight: 0.9},
			{Key: "leg_numbness", Weight: 0.85},
			{Key: "cold_legs", Weight: 0.8},
			{Key: "sores_toes", Weight: 0.75},
			{Key: "shiny_skin_legs", Weight: 0.7},
		},
	},
	{
		Key:  "deep_vein_thrombosis",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "swelling_leg", Weight: 0.95},
			{Key: "pain_leg", Weight: 0.9},
			{Key: "red_skin_leg", Weight: 0.85},
			{Key: "warmth_leg", Weight: 0.85},
		},
	},
	{
		Key:  "pulmonary_embolism",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "shortness_breath", Weight: 0.95},
			{Key: "chest_pain", Weight: 0.9},
			{Key: "cough", Weight: 0.8},
			{Key: "faintness", Weight: 0.85},
			{Key: "rapid_pulse", Weight: 0.85},
		},
	},
	{
		Key:  "sepsis",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.9},
			{Key: "low_body_temperature", Weight: 0.85},
			{Key: "rapid_heart_rate", Weight: 0.9},
			{Key: "rapid_breathing", Weight: 0.9},
			{Key: "confusion", Weight: 0.85},
		},
	},
	{
		Key:  "meningitis",
		Bias: -4.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "high_fever", Weight: 0.9},
			{Key: "stiff_neck", Weight: 0.95},
			{Key: "severe_headache", Weight: 0.9},
			{Key: "nausea", Weight: 0.8},
			{Key: "confusion", Weight: 0.85},
			{Key: "sensitivity_light", Weight: 0.8},
		},
	},
	{
		Key:  "encephalitis",
		Bias: -4.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "headache", Weight: 0.9},
			{Key: "fever", Weight: 0.85},
			{Key: "muscle_aches", Weight: 0.8},
			{Key: "confusion", Weight: 0.9},
			{Key: "seizures", Weight: 0.85},
		},
	},
	{
		Key:  "appendicitis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "pain_lower_right_abdomen", Weight: 0.99},
			{Key: "nausea", Weight: 0.85},
			{Key: "vomiting", Weight: 0.8},
			{Key: "loss_appetite", Weight: 0.75},
			{Key: "fever", Weight: 0.7},
		},
	},
	{
		Key:  "cholecystitis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "severe_pain_upper_right_abdomen", Weight: 0.95},
			{Key: "pain_radiating_shoulder", Weight: 0.85},
			{Key: "tenderness_abdomen", Weight: 0.9},
			{Key: "nausea", Weight: 0.8},
		},
	},
	{
		Key:  "pancreatitis",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "upper_abdominal_pain", Weight: 0.95},
			{Key: "abdominal_pain_back", Weight: 0.9},
			{Key: "tenderness_abdomen", Weight: 0.85},
			{Key: "fever", Weight: 0.8},
			{Key: "rapid_pulse", Weight: 0.8},
		},
	},
	{
		Key:  "gastritis",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "gnawing_pain_abdomen", Weight: 0.9},
			{Key: "nausea", Weight: 0.85},
			{Key: "vomiting", Weight: 0.8},
			{Key: "fullness_abdomen", Weight: 0.8},
		},
	},
	{
		Key:  "peptic_ulcer",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "burning_stomach_pain", Weight: 0.95},
			{Key: "feeling_full", Weight: 0.85},
			{Key: "heartburn", Weight: 0.8},
			{Key: "nausea", Weight: 0.75},
		},
	},
	{
		Key:  "diverticulitis",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "pain_abdominal", Weight: 0.9},
			{Key: "nausea", Weight: 0.8},
			{Key: "fever", Weight: 0.75},
			{Key: "constipation", Weight: 0.7},
		},
	},
	{
		Key:  "hemorrhoids",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "itching_anal", Weight: 0.9},
			{Key: "pain_anal", Weight: 0.85},
			{Key: "swelling_anal", Weight: 0.8},
			{Key: "bleeding_bowel_movements", Weight: 0.85},
		},
	},
	{
		Key:  "hernia",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "bulge_abdomen", Weight: 0.95},
			{Key: "pain_lift_heavy", Weight: 0.9},
			{Key: "ache_bulge", Weight: 0.85},
			{Key: "nausea", Weight: 0.7},
		},
	},
	{
		Key:  "fracture",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "pain", Weight: 0.95},
			{Key: "swelling", Weight: 0.9},
			{Key: "bruising", Weight: 0.85},
			{Key: "deformity", Weight: 0.95},
			{Key: "inability_move", Weight: 0.9},
		},
	},
	{
		Key:  "spinal_stenosis",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "numbness_extremities", Weight: 0.85},
			{Key: "weakness_extremities", Weight: 0.8},
			{Key: "neck_pain", Weight: 0.75},
			{Key: "balance_problems", Weight: 0.7},
		},
	},
	{
		Key:  "herniated_disc",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "arm_leg_pain", Weight: 0.9},
			{Key: "numbness", Weight: 0.85},
			{Key: "weakness", Weight: 0.8},
		},
	},
	{
		Key:  "scoliosis",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "uneven_shoulders", Weight: 0.95},
			{Key: "uneven_waist", Weight: 0.9},
			{Key: "one_hip_higher", Weight: 0.9},
		},
	},
	{
		Key:  "tendonitis",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "pain_tendon", Weight: 0.95},
			{Key: "tenderness", Weight: 0.9},
			{Key: "mild_swelling", Weight: 0.8},
		},
	},
	{
		Key:  "bursitis",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "aching_pain", Weight: 0.9},
			{Key: "stiffness", Weight: 0.85},
			{Key: "swollen_joint", Weight: 0.8},
			{Key: "redness", Weight: 0.75},
		},
	},
	{
		Key:  "carpal_tunnel_syndrome",
		Bias: -2.2,
		Symptoms: []domain.SymptomWeight{
			{Key: "numbness_fingers", Weight: 0.95},
			{Key: "weakness_hand", Weight: 0.85},
			{Key: "tingling_fingers", Weight: 0.9},
		},
	},
	{
		Key:  "plantar_fasciitis",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "stabbing_pain_heel", Weight: 0.95},
			{Key: "pain_morning", Weight: 0.9},
			{Key: "pain_after_exercise", Weight: 0.8},
		},
	},
	{
		Key:  "shingles",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "pain_burning", Weight: 0.95},
			{Key: "red_rash", Weight: 0.9},
			{Key: "fluid_filled_blisters", Weight: 0.9},
			{Key: "itching", Weight: 0.85},
		},
	},
	{
		Key:  "herpes_simplex",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "tingling_itching", Weight: 0.9},
			{Key: "sores", Weight: 0.95},
			{Key: "fever", Weight: 0.7},
			{Key: "swollen_lymph_nodes", Weight: 0.75},
		},
	},
	{
		Key:  "chickenpox",
		Bias: -2.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "itchy_rash", Weight: 0.99},
			{Key: "fever", Weight: 0.85},
			{Key: "fatigue", Weight: 0.8},
			{Key: "loss_appetite", Weight: 0.75},
		},
	},
	{
		Key:  "measles",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.95},
			{Key: "dry_cough", Weight: 0.85},
			{Key: "runny_nose", Weight: 0.8},
			{Key: "sore_throat", Weight: 0.75},
			{Key: "inflamed_eyes", Weight: 0.8},
			{Key: "koplik_spots", Weight: 0.95},
			{Key: "skin_rash", Weight: 0.95},
		},
	},
	{
		Key:  "mumps",
		Bias: -3.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "swollen_salivary_glands", Weight: 0.99},
			{Key: "fever", Weight: 0.85},
			{Key: "headache", Weight: 0.8},
			{Key: "muscle_aches", Weight: 0.8},
			{Key: "weakness", Weight: 0.75},
		},
	},
	{
		Key:  "rubella",
		Bias: -2.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "mild_fever", Weight: 0.8},
			{Key: "headache", Weight: 0.7},
			{Key: "runny_nose", Weight: 0.7},
			{Key: "inflamed_eyes", Weight: 0.7},
			{Key: "pink_rash", Weight: 0.95},
			{Key: "swollen_lymph_nodes", Weight: 0.85},
		},
	},
	{
		Key:  "whooping_cough",
		Bias: -2.8,
		Symptoms: []domain.SymptomWeight{
			{Key: "runny_nose", Weight: 0.8},
			{Key: "nasal_congestion", Weight: 0.8},
			{Key: "red_watery_eyes", Weight: 0.75},
			{Key: "severe_cough", Weight: 0.95},
		},
	},
	{
		Key:  "diptheria",
		Bias: -3.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "thick_gray_coating_throat", Weight: 0.99},
			{Key: "sore_throat", Weight: 0.9},
			{Key: "swollen_glands", Weight: 0.85},
			{Key: "difficulty_breathing", Weight: 0.9},
		},
	},
	{
		Key:  "tetanus",
		Bias: -4.0,
		Symptoms: []domain.SymptomWeight{
			{Key: "jaw_cramping", Weight: 0.95},
			{Key: "muscle_spasms", Weight: 0.9},
			{Key: "painful_muscle_stiffness", Weight: 0.9},
			{Key: "trouble_swallowing", Weight: 0.85},
		},
	},
	{
		Key:  "polio",
		Bias: -4.5,
		Symptoms: []domain.SymptomWeight{
			{Key: "fever", Weight: 0.8},
			{Key: "sore_throat", Weight: 0.75},
			{Key: "headache", Weight: 0.8},
			{Key: "vomiting", Weight: 0.75},
			{Key: "fatigue", Weight: 0.8},
			{Key: "muscle_weakness", Weight: 0.9},
			{Key: "meningitis", Weight: 0.85},
		},
	},
}
