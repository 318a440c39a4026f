package es

import (
	"Joblink/internal/pkg/util"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type JobRepo interface {
	SearchJobs(ctx context.Context, queryText string, segment string, from, size int) ([]*JobES, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
	GetJobById(ctx context.Context, id uint64) (*JobES, error)
	IndexJob(ctx context.Context, job *JobES, version int64) error
	DeleteJob(ctx context.Context, id uint64) error
}

type JobRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewJobRepo(client *elasticsearch.TypedClient) JobRepo {
	return &JobRepoImpl{client: client}
}

// SearchJobs 关键词检索，segment 非空时按精确相等过滤
func (s *JobRepoImpl) SearchJobs(ctx context.Context, queryText string, segment string, from, size int) ([]*JobES, error) {
	if from >= MaxSearchDepth {
		return []*JobES{}, nil
	}

	boolQuery := &types.BoolQuery{
		Should: []types.Query{
			{
				MultiMatch: &types.MultiMatchQuery{
					Query:  queryText,
					Fields: []string{"title^3", "company_name^2"},
					Boost:  util.PtrFloat32(2.0),
				},
			},
			{
				MultiMatch: &types.MultiMatchQuery{
					Query:     queryText,
					Fields:    []string{"title", "company_name"},
					Fuzziness: util.PtrStr("AUTO"),
					Boost:     util.PtrFloat32(0.5),
				},
			},
		},
		MinimumShouldMatch: 1,
	}

	if segment != "" {
		boolQuery.Filter = []types.Query{
			{
				Term: map[string]types.TermQuery{
					"segment": {Value: segment},
				},
			},
		}
	}

	searchReq := s.client.Search().
		Index(JobIndex).
		Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"_score":     {Order: &sortorder.Desc},
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, searchReq)
}

func (s *JobRepoImpl) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	suggestKey := "job-suggest"

	suggester := types.NewSuggester()
	suggester.Suggesters[suggestKey] = types.FieldSuggester{
		Prefix: &keyword,
		Completion: &types.CompletionSuggester{
			Field: "title.suggestion",
			Fuzzy: &types.SuggestFuzziness{
				Fuzziness: util.PtrStr("AUTO"),
			},
			Size: util.PtrInt(5),
		},
	}

	res, err := s.client.Search().
		Index(JobIndex).
		Suggest(suggester).
		Size(0).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0)
	if results, ok := res.Suggest[suggestKey]; ok {
		for _, r := range results {
			if cs, ok := r.(*types.CompletionSuggest); ok {
				for _, opt := range cs.Options {
					suggestions = append(suggestions, opt.Text)
				}
			}
		}
	}
	return suggestions, nil
}

func (s *JobRepoImpl) GetJobById(ctx context.Context, id uint64) (*JobES, error) {
	docID := strconv.FormatUint(id, 10)
	result, err := s.client.Get(JobIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil, nil
			}
		}
		return nil, err
	}
	if result.Source_ == nil {
		return nil, nil
	}
	var job JobES
	if err = json.Unmarshal(result.Source_, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// IndexJob 以外部版本号写入，旧版本写入会被 409 静默丢弃
func (s *JobRepoImpl) IndexJob(ctx context.Context, job *JobES, version int64) error {
	docID := strconv.FormatUint(job.ID, 10)

	_, err := s.client.Index(JobIndex).
		Id(docID).
		Document(job).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *JobRepoImpl) DeleteJob(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(JobIndex, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *JobRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*JobES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*JobES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var job JobES
		if hit.Source_ == nil {
			continue
		}
		if err = json.Unmarshal(hit.Source_, &job); err != nil {
			continue
		}
		if len(hit.Sort) > 0 {
			job.Sort = make([]interface{}, len(hit.Sort))
			for i, v := range hit.Sort {
				job.Sort[i] = v
			}
		}
		results = append(results, &job)
	}
	return results, nil
}
